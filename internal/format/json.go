package format

import (
	"encoding/json"
	"io"
)

// fieldMap projects the selected, present fields of a record into a map
// so that encoding/json only sees what was asked for.
func fieldMap(rec *Record, fields []string) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		if v, ok := rec.Field(f); ok {
			m[f] = v
		}
	}
	return m
}

// WriteJSON prints all records inside a {"urls": [...]} wrapper.
func WriteJSON(w io.Writer, records []Record, opts *Options) error {
	fields := opts.fields()
	urls := make([]map[string]string, len(records))
	for i := range records {
		urls[i] = fieldMap(&records[i], fields)
	}

	wrapper := struct {
		URLs []map[string]string `json:"urls"`
	}{URLs: urls}

	var (
		out []byte
		err error
	)
	if opts.Pretty {
		out, err = json.MarshalIndent(wrapper, "", "  ")
	} else {
		out, err = json.Marshal(wrapper)
	}
	if err != nil {
		return err
	}
	return writeLine(w, string(out), true, opts.NoNewline)
}

// WriteJSONL prints one JSON object per record per line.
func WriteJSONL(w io.Writer, records []Record, opts *Options) error {
	fields := opts.fields()
	for i := range records {
		out, err := json.Marshal(fieldMap(&records[i], fields))
		if err != nil {
			return err
		}
		if err := writeLine(w, string(out), i == len(records)-1, opts.NoNewline); err != nil {
			return err
		}
	}
	return nil
}
