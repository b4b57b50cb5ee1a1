package format

import (
	"encoding/json"
	"strings"
)

func escapeValue(v string, mode EscapeMode) string {
	switch mode {
	case EscapeShell:
		return shellEscape(v)
	case EscapeCSV:
		return csvEscape(v)
	case EscapeJSON:
		return jsonEscape(v)
	case EscapeSQL:
		return sqlEscape(v)
	}
	return v
}

func shellEscape(v string) string {
	if strings.ContainsAny(v, " \t\n\r\"'\\$`(){}[]|&;<>") {
		return "'" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
	}
	return v
}

func csvEscape(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

func jsonEscape(v string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func sqlEscape(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
