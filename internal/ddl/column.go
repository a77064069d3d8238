package ddl

import (
	"strings"

	"kolonna/internal/datamodel"
	"kolonna/internal/sqldialect"
)

// Compiler переводит поле datamodel в фрагмент определения колонки для
// привязанного диалекта. Состояния нет — только диалект; безопасно дёргать
// из любого числа горутин.
type Compiler struct {
	dialect sqldialect.Dialect
}

func NewCompiler(d sqldialect.Dialect) *Compiler {
	return &Compiler{dialect: d}
}

func (c *Compiler) Dialect() sqldialect.Dialect { return c.dialect }

// Column собирает "<имя> <тип> <nullability>[ DEFAULT <v>]".
//
// Правила:
//   - list-поле хранится как сериализованный текст независимо от скаляра;
//   - скаляр маппится по фиксированной таблице диалекта, неизвестный тип —
//     ошибка *sqldialect.UnsupportedScalarTypeError, без тихого дефолта;
//   - DEFAULT рендерится строковой формой значения как есть. Экранирование
//     литерала — на вызывающем: строковый default обязан уже быть валидным
//     SQL-литералом ('...'). Пустой (после TrimSpace) default подавляется —
//     клауза DEFAULT без значения не собирается. TODO: перейти на эскейпинг
//     литералов по типу скаляра, когда все datamodel-файлы будут переведены
//     на бескавычечные default'ы.
//
// f.AutoGenerated на вывод пока не влияет (зарезервировано).
func (c *Compiler) Column(f datamodel.Field) (string, error) {
	var typ string
	if f.List {
		typ = c.dialect.ListType()
	} else {
		t, err := c.dialect.ScalarType(f.Type)
		if err != nil {
			return "", err
		}
		typ = t
	}

	null := "NULL"
	if f.Required {
		null = "NOT NULL"
	}

	var sb strings.Builder
	sb.WriteString(c.dialect.QuoteIdent(f.Name))
	sb.WriteByte(' ')
	sb.WriteString(typ)
	sb.WriteByte(' ')
	sb.WriteString(null)
	if f.Default != nil && strings.TrimSpace(*f.Default) != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(*f.Default)
	}
	return sb.String(), nil
}
