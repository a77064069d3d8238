package sqldialect

import "kolonna/internal/datamodel"

type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) QuoteIdent(s string) string { return quoteDouble(s) }

func (SQLite) ScalarType(t datamodel.ScalarType) (string, error) {
	switch t {
	case datamodel.String:
		return "text", nil
	case datamodel.Boolean:
		return "boolean", nil
	case datamodel.Int:
		return "int", nil
	case datamodel.Float:
		return "Decimal(65,30)", nil
	case datamodel.Cuid:
		return "varchar (25)", nil
	case datamodel.Enum:
		return "text", nil
	case datamodel.Json:
		return "text", nil
	case datamodel.DateTime:
		return "datetime", nil
	case datamodel.UUID:
		// нативного uuid-типа нет — храним текстом
		return "text", nil
	default:
		return "", &UnsupportedScalarTypeError{Dialect: "sqlite", ScalarType: t}
	}
}

func (SQLite) ListType() string { return "text" }

// CREATE SCHEMA в грамматике sqlite нет
func (SQLite) SupportsSchemas() bool { return false }

func (SQLite) SupportsIndexIfNotExists() bool { return true }
