package datamodel

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// datamodelFile — структура одного YAML-файла:
//
//	module: crm
//	models:
//	  - name: Customer
//	    fields: [...]
type datamodelFile struct {
	Module string  `yaml:"module"`
	Models []Model `yaml:"models"`
}

// LoadModels читает один datamodel-файл и возвращает список моделей
func LoadModels(path string) ([]*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f datamodelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	out := make([]*Model, 0, len(f.Models))
	for i := range f.Models {
		m := f.Models[i]
		if m.Module == "" {
			m.Module = f.Module
		}
		if err := validateModel(&m); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, nil
}

func validateModel(m *Model) error {
	if m.Name == "" {
		return fmt.Errorf("model without a name")
	}
	if m.Module == "" {
		return fmt.Errorf("model %q has no module — add `module: <name>` at the top of the file", m.Name)
	}
	seen := map[string]struct{}{}
	for _, f := range m.Fields {
		if f.Name == "" {
			return fmt.Errorf("%s: field without a name", m.FQN())
		}
		nameLower := strings.ToLower(f.Name)
		if _, dup := seen[nameLower]; dup {
			return fmt.Errorf("%s: duplicate field %q", m.FQN(), f.Name)
		}
		seen[nameLower] = struct{}{}
		// тип проверяем строго здесь, чтобы ошибка указывала на файл,
		// а не всплывала позже из компилятора колонок
		if _, err := ParseScalarType(string(f.Type)); err != nil {
			return fmt.Errorf("%s.%s: %w", m.FQN(), f.Name, err)
		}
		if f.Type == Enum && len(f.Enum) == 0 {
			return fmt.Errorf("%s.%s: enum field without values", m.FQN(), f.Name)
		}
	}
	for _, set := range m.Unique {
		for _, col := range set {
			if _, ok := seen[strings.ToLower(col)]; !ok {
				return fmt.Errorf("%s: unique(%s) references unknown field %q",
					m.FQN(), strings.Join(set, ","), col)
			}
		}
	}
	return nil
}

// LoadAllModels обходит каталог, собирает все *.yaml/*.yml в единый словарь FQN -> Model
func LoadAllModels(root string) (map[string]*Model, error) {
	result := make(map[string]*Model)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		models, err := LoadModels(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, m := range models {
			fqn := m.FQN()
			if _, exists := result[fqn]; exists {
				return fmt.Errorf("duplicate model %q in module %q (file: %s)", m.Name, m.Module, path)
			}
			result[fqn] = m
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
