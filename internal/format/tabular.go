package format

import (
	"fmt"
	"io"
	"strings"
)

// Options carries the rendering knobs shared by all formats.
type Options struct {
	Fields    []string
	NullValue string
	Header    bool
	Pretty    bool
	NoNewline bool

	Table       string
	Dialect     Dialect
	CreateTable bool

	Template *Template
	Escape   EscapeMode
}

func (o *Options) fields() []string {
	if len(o.Fields) == 0 {
		return FieldNames
	}
	return o.Fields
}

func (o *Options) nullValue() string {
	if o.NullValue == "" {
		return `\N`
	}
	return o.NullValue
}

// writeLine writes line with the trailing newline suppressed on the last
// row when NoNewline is set.
func writeLine(w io.Writer, line string, last, noNewline bool) error {
	var err error
	if last && noNewline {
		_, err = io.WriteString(w, line)
	} else {
		_, err = io.WriteString(w, line+"\n")
	}
	return err
}

// WritePlain prints space-joined selected fields, one record per line.
// Absent fields are skipped entirely rather than shown as a placeholder.
func WritePlain(w io.Writer, records []Record, opts *Options) error {
	fields := opts.fields()
	for i := range records {
		var parts []string
		for _, f := range fields {
			if v, ok := records[i].Field(f); ok {
				parts = append(parts, v)
			}
		}
		if err := writeLine(w, strings.Join(parts, " "), i == len(records)-1, opts.NoNewline); err != nil {
			return err
		}
	}
	return nil
}

// WriteTabular prints separator-joined rows, with an optional header and
// a placeholder for absent fields. CSV output quotes values that contain
// the separator, a quote or a newline.
func WriteTabular(w io.Writer, records []Record, sep byte, opts *Options) error {
	fields := opts.fields()
	sepStr := string(sep)

	if opts.Header {
		if _, err := fmt.Fprintln(w, strings.Join(fields, sepStr)); err != nil {
			return err
		}
	}
	for i := range records {
		row := selectFields(&records[i], fields, opts.nullValue())
		if sep == ',' {
			for j, v := range row {
				row[j] = csvEscape(v)
			}
		}
		if err := writeLine(w, strings.Join(row, sepStr), i == len(records)-1, opts.NoNewline); err != nil {
			return err
		}
	}
	return nil
}
