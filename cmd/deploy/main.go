package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"kolonna/internal/config"
	"kolonna/internal/datamodel"
	"kolonna/internal/ddl"
	"kolonna/internal/pg"
	"kolonna/internal/sqldialect"
)

func main() {
	cfg := config.LoadWithPath("config.json")

	// 1. Загружаем datamodel-файлы
	models, err := datamodel.LoadAllModels(cfg.DatamodelDir)
	if err != nil {
		log.Fatalf("Ошибка загрузки datamodel: %v", err)
	}
	fmt.Printf("Загружено моделей: %d\n", len(models))

	// 2. Диалект из конфига
	dialect, err := sqldialect.ForName(cfg.Dialect)
	if err != nil {
		log.Fatalf("Ошибка конфига: %v", err)
	}

	// 3. Генерируем DDL
	statements, err := ddl.GenerateDDL(dialect, models)
	if err != nil {
		log.Fatalf("Ошибка генерации DDL (%s): %v", dialect.Name(), err)
	}

	keys := make([]string, 0, len(statements))
	for k := range statements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := os.Stdout
	if cfg.OutFile != "" {
		f, err := os.Create(cfg.OutFile)
		if err != nil {
			log.Fatalf("Ошибка записи %s: %v", cfg.OutFile, err)
		}
		defer f.Close()
		out = f
	}
	for _, k := range keys {
		fmt.Fprintf(out, "-- %s\n%s\n", k, statements[k])
	}

	// 4. Применяем к Postgres, если попросили
	if cfg.Apply {
		if cfg.DBURL == "" {
			log.Fatal("apply=true, но db url пустой")
		}
		if dialect.Name() != "postgres" {
			log.Fatalf("apply поддержан только для postgres (диалект: %s)", dialect.Name())
		}
		db, err := pg.Open(context.Background(), cfg.DBURL)
		if err != nil {
			log.Fatalf("Ошибка подключения к Postgres: %v", err)
		}
		defer db.Close()
		if err := pg.ApplyDDL(db, statements); err != nil {
			log.Fatalf("Ошибка применения DDL: %v", err)
		}
		fmt.Println("DDL применён")
	}
}
