package format

import (
	"fmt"
	"io"
	"strings"
)

// WriteSQL prints one INSERT statement per record, preceded by a CREATE
// TABLE statement when requested.
func WriteSQL(w io.Writer, records []Record, opts *Options) error {
	fields := opts.fields()
	if len(fields) == 0 {
		return fmt.Errorf("sql format requires at least one field")
	}
	table := opts.Table
	if table == "" {
		table = "urls"
	}

	if opts.CreateTable {
		if _, err := fmt.Fprintln(w, createTable(table, fields, opts.Dialect)); err != nil {
			return err
		}
	}
	for i := range records {
		stmt := insertStatement(&records[i], fields, table)
		if err := writeLine(w, stmt, i == len(records)-1, opts.NoNewline); err != nil {
			return err
		}
	}
	return nil
}

func createTable(table string, fields []string, dialect Dialect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	b.WriteString("    id SERIAL PRIMARY KEY,\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "    %s %s,\n", f, columnType(f, dialect))
	}
	b.WriteString("    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP\n")
	b.WriteString(");")
	return b.String()
}

func columnType(field string, dialect Dialect) string {
	switch dialect {
	case SQLite, Generic:
		if field == "port" {
			return "INTEGER"
		}
		return "TEXT"
	}

	// Postgres and MySQL share sizes; only the integer keyword differs.
	switch field {
	case "url":
		return "VARCHAR(2048)"
	case "scheme":
		return "VARCHAR(32)"
	case "username":
		return "VARCHAR(255)"
	case "host", "hostname", "subdomain", "domain":
		return "VARCHAR(253)"
	case "port":
		if dialect == MySQL {
			return "INT"
		}
		return "INTEGER"
	case "fragment":
		return "VARCHAR(255)"
	default:
		return "TEXT"
	}
}

func insertStatement(rec *Record, fields []string, table string) string {
	values := make([]string, len(fields))
	for i, f := range fields {
		if v, ok := rec.Field(f); ok {
			values[i] = sqlEscape(v)
		} else {
			values[i] = "NULL"
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(fields, ", "), strings.Join(values, ", "))
}
