package sqldialect

import "kolonna/internal/datamodel"

// Postgres — эталонный диалект.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) QuoteIdent(s string) string { return quoteDouble(s) }

// ScalarType: фиксированная таблица скаляр -> тип Postgres.
// Float маппим в Decimal(65,30) — сохраняем десятичную семантику,
// а не двоичную с плавающей точкой. Enum и Json храним как text.
func (Postgres) ScalarType(t datamodel.ScalarType) (string, error) {
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
		// миллисекундная точность
		return "timestamp (3)", nil
	case datamodel.UUID:
		return "uuid", nil
	default:
		return "", &UnsupportedScalarTypeError{Dialect: "postgres", ScalarType: t}
	}
}

// списки — сериализованный текст, без native arrays
func (Postgres) ListType() string { return "text" }

func (Postgres) SupportsSchemas() bool { return true }

func (Postgres) SupportsIndexIfNotExists() bool { return true }
