package format

import (
	"fmt"
	"strings"
)

// Format selects the output rendering.
type Format string

const (
	Plain  Format = "plain"
	TSV    Format = "tsv"
	CSV    Format = "csv"
	JSON   Format = "json"
	JSONL  Format = "jsonl"
	SQL    Format = "sql"
	Custom Format = "custom"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case Plain, TSV, CSV, JSON, JSONL, SQL, Custom:
		return Format(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid format %q (valid: plain, tsv, csv, json, jsonl, sql, custom)", s)
}

// EscapeMode selects how template field values are quoted.
type EscapeMode string

const (
	EscapeNone  EscapeMode = "none"
	EscapeShell EscapeMode = "shell"
	EscapeCSV   EscapeMode = "csv"
	EscapeJSON  EscapeMode = "json"
	EscapeSQL   EscapeMode = "sql"
)

// ParseEscapeMode maps a flag value onto an EscapeMode.
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch EscapeMode(strings.ToLower(s)) {
	case EscapeNone, EscapeShell, EscapeCSV, EscapeJSON, EscapeSQL:
		return EscapeMode(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid escape mode %q (valid: none, shell, csv, json, sql)", s)
}

// Dialect selects the SQL flavor for CREATE TABLE column types.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
	Generic  Dialect = "generic"
)

// ParseDialect maps a flag value onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(s)) {
	case Postgres, MySQL, SQLite, Generic:
		return Dialect(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("invalid sql dialect %q (valid: postgres, mysql, sqlite, generic)", s)
}
