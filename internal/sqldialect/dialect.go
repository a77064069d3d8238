package sqldialect

import (
	"fmt"
	"strings"

	"kolonna/internal/datamodel"
)

// Dialect инкапсулирует всё диалектно-зависимое: имена типов, квотирование
// идентификаторов, тип-хранилище для списков. Компилятор колонок получает
// его снаружи и сам про конкретную СУБД ничего не знает.
type Dialect interface {
	Name() string

	// QuoteIdent возвращает безопасный квотированный идентификатор.
	// Детерминированно и идемпотентно: уже квотированный ввод не
	// оборачивается второй раз.
	QuoteIdent(s string) string

	// ScalarType возвращает SQL-тип для скалярного типа datamodel.
	// Для типа вне закрытого множества — *UnsupportedScalarTypeError.
	ScalarType(t datamodel.ScalarType) (string, error)

	// ListType — тип колонки для list-полей: списки храним как
	// сериализованный текст, без нативных массивов
	ListType() string

	// SupportsSchemas — умеет ли СУБД отдельные схемы (CREATE SCHEMA).
	// Если нет, модуль уходит в префикс имени таблицы.
	SupportsSchemas() bool

	// SupportsIndexIfNotExists — есть ли IF NOT EXISTS у CREATE INDEX
	SupportsIndexIfNotExists() bool
}

// UnsupportedScalarTypeError — скалярный тип, для которого в таблице
// маппинга диалекта нет значения. Фатально для компиляции колонки:
// молча подставлять дефолтный SQL-тип нельзя.
type UnsupportedScalarTypeError struct {
	Dialect    string
	ScalarType datamodel.ScalarType
}

func (e *UnsupportedScalarTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported scalar type %q", e.Dialect, e.ScalarType)
}

// ForName подбирает диалект по имени из конфига
func ForName(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "postgres", "postgresql", "pg":
		return Postgres{}, nil
	case "mysql":
		return MySQL{}, nil
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect: %q", name)
	}
}

// isQuoted: обёрнут в q и все внутренние q корректно удвоены.
// Только такой ввод пропускаем без повторного квотирования — иначе
// "a"b" прошёл бы как уже готовый идентификатор с одиночной кавычкой внутри.
func isQuoted(s string, q byte) bool {
	if len(s) < 2 || s[0] != q || s[len(s)-1] != q {
		return false
	}
	inner := s[1 : len(s)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] == q {
			if i+1 >= len(inner) || inner[i+1] != q {
				return false
			}
			i++
		}
	}
	return true
}

// квотирование через удвоение кавычки — общее для postgres/sqlite
func quoteDouble(s string) string {
	if isQuoted(s, '"') {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
