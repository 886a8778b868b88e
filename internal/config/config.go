package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default published catalog sheet (CSV export).
const defaultCatalogURL = "https://docs.google.com/spreadsheets/d/14Pmz5-bFVPSPbfoKi5BfQWa8qVMVNDqxEQVmhT9wyuU/export?format=csv&gid=1834709463"

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	CatalogURL     string
	CatalogTimeout time.Duration
	KeywordFile    string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	catalogSec, _ := strconv.Atoi(getenv("CATALOG_TIMEOUT_SEC", "60"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/newmatch.log"),

		CatalogURL:     getenv("CATALOG_URL", defaultCatalogURL),
		CatalogTimeout: time.Duration(catalogSec) * time.Second,
		KeywordFile:    getenv("KEYWORD_FILE", "keywords.xlsx"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
