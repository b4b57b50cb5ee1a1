// Package format renders parsed URL records as plain text, TSV/CSV,
// JSON, JSONL, SQL inserts or a custom template.
package format

import (
	"fmt"
	"strings"

	"github.com/livp123/urlp/internal/domain"
	"github.com/livp123/urlp/internal/urlview"
)

// Record is the flattened, formatter-facing view of one parsed URL.
// Empty strings mean "absent"; Path is the one field that is always
// present because the parser normalizes an empty path to root.
type Record struct {
	URL       string `json:"url,omitempty"`
	Scheme    string `json:"scheme,omitempty"`
	Username  string `json:"username,omitempty"`
	Host      string `json:"host,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
	Subdomain string `json:"subdomain,omitempty"`
	Domain    string `json:"domain,omitempty"`
	Port      string `json:"port,omitempty"`
	Path      string `json:"path,omitempty"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
}

// FieldNames is the canonical field order used by --all and headers.
var FieldNames = []string{
	"url", "scheme", "username", "host", "hostname", "subdomain",
	"domain", "port", "path", "query", "fragment",
}

// FromURL builds a Record from a parsed URL, filling in the domain and
// subdomain heuristics.
func FromURL(input string, u *urlview.URL) Record {
	rec := Record{
		URL:    input,
		Scheme: u.Scheme(),
		Path:   u.Path(),
	}
	if host, ok := u.HostStr(); ok {
		rec.Host = host
		rec.Hostname = host
		rec.Domain = domain.Extract(host)
		rec.Subdomain = domain.Subdomain(host)
	}
	rec.Username = u.Username()
	if port, ok := u.PortString(); ok {
		rec.Port = port
	}
	if q, ok := u.Query(); ok {
		rec.Query = q
	}
	if f, ok := u.Fragment(); ok {
		rec.Fragment = f
	}
	return rec
}

// Field returns the named field and whether it is present.
func (r *Record) Field(name string) (string, bool) {
	var v string
	switch name {
	case "url":
		v = r.URL
	case "scheme":
		v = r.Scheme
	case "username":
		v = r.Username
	case "host":
		v = r.Host
	case "hostname":
		v = r.Hostname
	case "subdomain":
		v = r.Subdomain
	case "domain":
		v = r.Domain
	case "port":
		v = r.Port
	case "path":
		v = r.Path
	case "query":
		v = r.Query
	case "fragment":
		v = r.Fragment
	default:
		return "", false
	}
	return v, v != ""
}

// IsFieldName reports whether name is a known record field.
func IsFieldName(name string) bool {
	for _, f := range FieldNames {
		if f == name {
			return true
		}
	}
	return false
}

// ParseFields validates a comma-separated field list.
func ParseFields(spec string) ([]string, error) {
	var fields []string
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !IsFieldName(f) {
			return nil, fmt.Errorf("unknown field %q (valid: %s)", f, strings.Join(FieldNames, ", "))
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty field list")
	}
	return fields, nil
}

func selectFields(rec *Record, fields []string, nullValue string) []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		if v, ok := rec.Field(f); ok {
			row[i] = v
		} else {
			row[i] = nullValue
		}
	}
	return row
}
