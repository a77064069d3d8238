package ddl

import (
	"fmt"
	"sort"
	"strings"

	"kolonna/internal/datamodel"
	"kolonna/internal/sqldialect"
)

var reserved = map[string]struct{}{
	"user": {}, "select": {}, "table": {}, "insert": {}, "update": {}, "delete": {},
	"where": {}, "join": {}, "group": {}, "order": {}, "limit": {}, "offset": {},
	"primary": {}, "foreign": {}, "key": {}, "constraint": {}, "default": {},
	"from": {}, "into": {}, "values": {}, "unique": {}, "index": {}, "create": {},
	"drop": {}, "alter": {}, "schema": {}, "grant": {}, "revoke": {},
}

func isReserved(s string) bool { _, ok := reserved[strings.ToLower(s)]; return ok }

// элементарная плюрализация (достаточно для users, projects, ...)
func plural(s string) string {
	s = strings.ToLower(s)
	if strings.HasSuffix(s, "s") {
		return s
	}
	return s + "s"
}

// schema = module (lower), table = plural(model) с защитой keyword'ов
func safeSchema(module string) string { return strings.ToLower(module) }

func safeTable(model string) string {
	t := plural(model)
	if isReserved(t) {
		// помечаем «опасное» имя префиксом
		t = "m_" + t
	}
	return t
}

// GenerateDDL возвращает карту key -> SQL: схемы и таблицы одной фазой,
// уникальные индексы следом. DDL идемпотентный (if not exists), порядок
// применения задаётся сортировкой ключей.
func GenerateDDL(d sqldialect.Dialect, models map[string]*datamodel.Model) (map[string]string, error) {
	comp := NewCompiler(d)
	out := make(map[string]string, 2)

	// стабильный порядок моделей
	keys := make([]string, 0, len(models))
	for k := range models {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tablesSb strings.Builder
	var indexesSb strings.Builder
	seenSchemas := map[string]struct{}{}

	for _, fqnKey := range keys {
		m := models[fqnKey]

		mod := safeSchema(m.Module)
		tbl := safeTable(m.Name)

		// диалект без схем (sqlite): модуль уходит в префикс имени таблицы
		tableRef := d.QuoteIdent(mod) + "." + d.QuoteIdent(tbl)
		if !d.SupportsSchemas() {
			tableRef = d.QuoteIdent(mod + "_" + tbl)
		} else if _, ok := seenSchemas[mod]; !ok {
			fmt.Fprintf(&tablesSb, "CREATE SCHEMA IF NOT EXISTS %s;\n", d.QuoteIdent(mod))
			seenSchemas[mod] = struct{}{}
		}

		var cols []string
		var pks []string
		for _, f := range m.Fields {
			col, err := comp.Column(f)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", fqnKey, f.Name, err)
			}
			cols = append(cols, col)
			if f.Primary {
				pks = append(pks, d.QuoteIdent(f.Name))
			}
		}
		if len(pks) > 0 {
			cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
		}

		fmt.Fprintf(&tablesSb, "CREATE TABLE IF NOT EXISTS %s (\n  %s\n);\n",
			tableRef, strings.Join(cols, ",\n  "))

		// уникальные наборы; mysql не знает IF NOT EXISTS у CREATE INDEX —
		// там дубликат отфильтрует ApplyDDL-слой по ошибке duplicate
		ifNotExists := ""
		if d.SupportsIndexIfNotExists() {
			ifNotExists = "IF NOT EXISTS "
		}
		for _, set := range m.Unique {
			if len(set) == 0 {
				continue
			}
			idxName := strings.ToLower(m.Name + "_" + strings.Join(set, "_") + "_uq")
			var parts []string
			for _, p := range set {
				parts = append(parts, d.QuoteIdent(p))
			}
			fmt.Fprintf(&indexesSb, "CREATE UNIQUE INDEX %s%s ON %s (%s);\n",
				ifNotExists, d.QuoteIdent(idxName), tableRef, strings.Join(parts, ", "))
		}
	}

	out["000_schemas_and_tables"] = tablesSb.String()
	if indexesSb.Len() > 0 {
		out["100_unique_indexes"] = indexesSb.String()
	}
	return out, nil
}
