package format

import (
	"fmt"
	"io"
	"strings"
)

// A template mixes literal text with field references:
//
//	{field}          value, or nothing when absent
//	{field:default}  value, or the default when absent
//	{field?text}     text when the field is present
//	{field!text}     text when the field is missing
type Template struct {
	tokens []templateToken
}

type templateToken struct {
	text        string // literal text when field == ""
	field       string
	defaultVal  string
	whenPresent string
	whenMissing string
	hasDefault  bool
	hasPresent  bool
	hasMissing  bool
}

// ParseTemplate compiles a template string, rejecting unknown field names
// up front so a typo fails before any output is produced.
func ParseTemplate(tmpl string) (*Template, error) {
	var tokens []templateToken
	var literal strings.Builder

	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]
		if ch != '{' {
			literal.WriteByte(ch)
			continue
		}

		if literal.Len() > 0 {
			tokens = append(tokens, templateToken{text: literal.String()})
			literal.Reset()
		}

		// Collect the field spec up to the matching brace.
		depth := 1
		j := i + 1
		var spec strings.Builder
		for ; j < len(tmpl); j++ {
			switch tmpl[j] {
			case '{':
				depth++
				spec.WriteByte('{')
			case '}':
				depth--
				if depth == 0 {
					goto done
				}
				spec.WriteByte('}')
			default:
				spec.WriteByte(tmpl[j])
			}
		}
	done:
		if depth != 0 {
			return nil, fmt.Errorf("unclosed '{' in template")
		}
		tok, err := parseFieldSpec(spec.String())
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		i = j
	}

	if literal.Len() > 0 {
		tokens = append(tokens, templateToken{text: literal.String()})
	}
	return &Template{tokens: tokens}, nil
}

func parseFieldSpec(spec string) (templateToken, error) {
	var tok templateToken

	switch {
	case strings.Contains(spec, ":"):
		name, rest, _ := strings.Cut(spec, ":")
		tok.field, tok.defaultVal, tok.hasDefault = name, rest, true
	case strings.Contains(spec, "?"):
		name, rest, _ := strings.Cut(spec, "?")
		tok.field, tok.whenPresent, tok.hasPresent = name, rest, true
	case strings.Contains(spec, "!"):
		name, rest, _ := strings.Cut(spec, "!")
		tok.field, tok.whenMissing, tok.hasMissing = name, rest, true
	default:
		tok.field = spec
	}

	if !IsFieldName(tok.field) {
		return tok, fmt.Errorf("invalid template field %q", tok.field)
	}
	return tok, nil
}

// Render expands the template against one record.
func (t *Template) Render(rec *Record, mode EscapeMode) string {
	var b strings.Builder
	for _, tok := range t.tokens {
		if tok.field == "" {
			b.WriteString(tok.text)
			continue
		}

		v, present := rec.Field(tok.field)
		switch {
		case present && tok.hasPresent:
			b.WriteString(tok.whenPresent)
		case present:
			b.WriteString(escapeValue(v, mode))
		case tok.hasMissing:
			b.WriteString(tok.whenMissing)
		case tok.hasDefault:
			b.WriteString(escapeValue(tok.defaultVal, mode))
		}
	}
	return b.String()
}

// WriteTemplate renders every record through the compiled template.
func WriteTemplate(w io.Writer, records []Record, opts *Options) error {
	if opts.Template == nil {
		return fmt.Errorf("custom format requires a template")
	}
	for i := range records {
		line := opts.Template.Render(&records[i], opts.Escape)
		if err := writeLine(w, line, i == len(records)-1, opts.NoNewline); err != nil {
			return err
		}
	}
	return nil
}

// Write dispatches records to the renderer selected by f.
func Write(w io.Writer, f Format, records []Record, opts *Options) error {
	switch f {
	case Plain:
		return WritePlain(w, records, opts)
	case TSV:
		return WriteTabular(w, records, '\t', opts)
	case CSV:
		return WriteTabular(w, records, ',', opts)
	case JSON:
		return WriteJSON(w, records, opts)
	case JSONL:
		return WriteJSONL(w, records, opts)
	case SQL:
		return WriteSQL(w, records, opts)
	case Custom:
		return WriteTemplate(w, records, opts)
	}
	return fmt.Errorf("unsupported format %q", f)
}
