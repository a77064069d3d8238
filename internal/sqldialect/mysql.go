package sqldialect

import (
	"strings"

	"kolonna/internal/datamodel"
)

type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

// MySQL квотирует бэктиками
func (MySQL) QuoteIdent(s string) string {
	if isQuoted(s, '`') {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

func (MySQL) ScalarType(t datamodel.ScalarType) (string, error) {
	switch t {
	case datamodel.String:
		return "mediumtext", nil
	case datamodel.Boolean:
		return "boolean", nil
	case datamodel.Int:
		return "int", nil
	case datamodel.Float:
		return "Decimal(65,30)", nil
	case datamodel.Cuid:
		return "char(25)", nil
	case datamodel.Enum:
		// значения enum короткие; 191 — предел для индексируемого utf8mb4
		return "varchar(191)", nil
	case datamodel.Json:
		return "mediumtext", nil
	case datamodel.DateTime:
		return "datetime(3)", nil
	case datamodel.UUID:
		// нативного uuid-типа нет
		return "char(36)", nil
	default:
		return "", &UnsupportedScalarTypeError{Dialect: "mysql", ScalarType: t}
	}
}

func (MySQL) ListType() string { return "mediumtext" }

// schema = database, CREATE SCHEMA IF NOT EXISTS работает
func (MySQL) SupportsSchemas() bool { return true }

// у CREATE INDEX нет IF NOT EXISTS
func (MySQL) SupportsIndexIfNotExists() bool { return false }
