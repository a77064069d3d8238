package datamodel

import "fmt"

// ScalarType — логический тип поля, независимый от конкретной СУБД.
// Закрытое множество: всё вне его должно падать, а не маппиться "по умолчанию".
type ScalarType string

const (
	String   ScalarType = "string"
	Boolean  ScalarType = "bool"
	Int      ScalarType = "int"
	Float    ScalarType = "float"
	Cuid     ScalarType = "cuid" // идентификатор фиксированной длины (25)
	Enum     ScalarType = "enum"
	Json     ScalarType = "json"
	DateTime ScalarType = "datetime"
	UUID     ScalarType = "uuid"
)

var scalarTypes = map[ScalarType]struct{}{
	String: {}, Boolean: {}, Int: {}, Float: {}, Cuid: {},
	Enum: {}, Json: {}, DateTime: {}, UUID: {},
}

// ParseScalarType строго проверяет строку из YAML по закрытому множеству.
func ParseScalarType(s string) (ScalarType, error) {
	t := ScalarType(s)
	if _, ok := scalarTypes[t]; !ok {
		return "", fmt.Errorf("unknown scalar type: %q", s)
	}
	return t, nil
}

// Field описывает одно поле модели
type Field struct {
	Name     string     `yaml:"name"`
	Type     ScalarType `yaml:"type"`
	Required bool       `yaml:"required,omitempty"`
	List     bool       `yaml:"list,omitempty"`
	Primary  bool       `yaml:"primary,omitempty"`
	// AutoGenerated зарезервировано: на вывод колонки пока не влияет
	AutoGenerated bool     `yaml:"auto,omitempty"`
	Default       *string  `yaml:"default,omitempty"` // nil = без DEFAULT
	Enum          []string `yaml:"enum,omitempty"`    // значения, если type: enum
}

// Model описывает модель (таблицу) из datamodel-файла
type Model struct {
	Module string     `yaml:"module,omitempty"` // может наследоваться от файла
	Name   string     `yaml:"name"`
	Fields []Field    `yaml:"fields"`
	Unique [][]string `yaml:"unique,omitempty"` // составные уникальные наборы
}

// FQN — "module.name", ключ модели в каталоге
func (m *Model) FQN() string { return m.Module + "." + m.Name }
