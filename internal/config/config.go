package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatamodelDir string `json:"datamodelDir"`
	Dialect      string `json:"dialect"` // "postgres" (default) | "mysql" | "sqlite"
	DBURL        string `json:"dbUrl"`   // пустой = только печать DDL
	OutFile      string `json:"outFile"` // куда писать DDL ("" = stdout)
	Apply        bool   `json:"apply"`   // применять к БД (только postgres)
}

func def() Config {
	return Config{
		DatamodelDir: "datamodel",
		Dialect:      "postgres",
		DBURL:        "",
		OutFile:      "",
		Apply:        false,
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}

func boolish(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, "true") || v == "1" || strings.EqualFold(v, "yes")
}

// fileEnv — слои JSON (если файл существует) + ENV
func fileEnv(jsonPath string) Config {
	cfg := def()

	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	cfg.DatamodelDir = getenv("KOLONNA_DATAMODEL_DIR", cfg.DatamodelDir)
	cfg.Dialect = getenv("KOLONNA_DIALECT", cfg.Dialect)
	cfg.DBURL = getenv("KOLONNA_DB_URL", cfg.DBURL)
	cfg.OutFile = getenv("KOLONNA_OUT_FILE", cfg.OutFile)
	cfg.Apply = getenvBool("KOLONNA_APPLY", cfg.Apply)

	return cfg
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV и флаги.
func LoadWithPath(jsonPath string) Config {
	return load(jsonPath, os.Args[1:])
}

// load регистрирует флаги на собственном FlagSet и разбирает их ровно один
// раз: при -config с другим путём перечитываются только слои JSON+ENV,
// а поверх ложатся явно переданные флаги (без повторной регистрации).
func load(jsonPath string, args []string) Config {
	cfg := fileEnv(jsonPath)

	fs := flag.NewFlagSet("kolonna", flag.ExitOnError)
	configPath := fs.String("config", jsonPath, "Path to config JSON")
	dm := fs.String("datamodel", cfg.DatamodelDir, "Path to datamodel directory")
	dialect := fs.String("dialect", cfg.Dialect, "SQL dialect (postgres/mysql/sqlite)")
	db := fs.String("db", cfg.DBURL, "Postgres URL (empty = print only)")
	out := fs.String("out", cfg.OutFile, "Write DDL to file instead of stdout")
	apply := fs.String("apply", strconv.FormatBool(cfg.Apply), "Apply DDL to database (true/false)")

	_ = fs.Parse(args) // ExitOnError: на ошибке сам завершит процесс

	// Если через флаг передали другой конфиг — перечитаем JSON+ENV
	if *configPath != jsonPath {
		cfg = fileEnv(*configPath)
	}

	// применяем только явно переданные флаги: дефолты флагов взяты из
	// исходного слоя и после смены -config уже неактуальны
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "datamodel":
			cfg.DatamodelDir = strings.TrimSpace(*dm)
		case "dialect":
			cfg.Dialect = strings.TrimSpace(*dialect)
		case "db":
			cfg.DBURL = strings.TrimSpace(*db)
		case "out":
			cfg.OutFile = strings.TrimSpace(*out)
		case "apply":
			cfg.Apply = boolish(*apply)
		}
	})

	return cfg
}
