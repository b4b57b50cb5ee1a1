package pipeline

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/livp123/urlp/internal/format"
)

// Env is the environment a filter expression is evaluated against.
// Every field mirrors one output field; absent components are empty strings.
type Env struct {
	URL       string
	Scheme    string
	Username  string
	Host      string
	Hostname  string
	Subdomain string
	Domain    string
	Port      string
	Path      string
	Query     string
	Fragment  string
}

// HasQuery reports whether the URL carried a non-empty query.
func (e Env) HasQuery() bool { return e.Query != "" }

// HasFragment reports whether the URL carried a non-empty fragment.
func (e Env) HasFragment() bool { return e.Fragment != "" }

// HasPort reports whether an explicit port was present.
func (e Env) HasPort() bool { return e.Port != "" }

// Filter holds a compiled expression applied to each parsed record.
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles a boolean filter expression once, up front, so a bad
// expression fails before any input is consumed.
func NewFilter(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", src, err)
	}
	return &Filter{source: src, program: program}, nil
}

// Match evaluates the filter against one record.
func (f *Filter) Match(rec *format.Record) (bool, error) {
	env := Env{
		URL:       rec.URL,
		Scheme:    rec.Scheme,
		Username:  rec.Username,
		Host:      rec.Host,
		Hostname:  rec.Hostname,
		Subdomain: rec.Subdomain,
		Domain:    rec.Domain,
		Port:      rec.Port,
		Path:      rec.Path,
		Query:     rec.Query,
		Fragment:  rec.Fragment,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// String returns the original expression source.
func (f *Filter) String() string { return f.source }
