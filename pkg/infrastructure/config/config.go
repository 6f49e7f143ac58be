package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the restock run settings resolved from the environment
type Config struct {
	DataDir          string
	StockFile        string
	AvailabilityFile string
	ProductsFile     string
	SuppliersFile    string
	OutputFile       string
	XLSXOutput       string

	ReorderThreshold int
	TargetLevel      int

	LogLevel  string
	LogPretty bool
}

// Load reads an optional .env file and then the process environment.
// Unset variables fall back to the defaults of a plain run in the current directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	threshold, err := getEnvInt("RESTOCK_REORDER_THRESHOLD", 20)
	if err != nil {
		return Config{}, err
	}
	targetLevel, err := getEnvInt("RESTOCK_TARGET_LEVEL", 50)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:          getEnv("RESTOCK_DATA_DIR", "."),
		StockFile:        getEnv("RESTOCK_STOCK_FILE", "onshelves.txt"),
		AvailabilityFile: getEnv("RESTOCK_AVAILABILITY_FILE", "availability.txt"),
		ProductsFile:     getEnv("RESTOCK_PRODUCTS_FILE", "products.txt"),
		SuppliersFile:    getEnv("RESTOCK_SUPPLIERS_FILE", "suppliers.txt"),
		OutputFile:       getEnv("RESTOCK_OUTPUT", "orders.txt"),
		XLSXOutput:       getEnv("RESTOCK_XLSX_OUTPUT", ""),

		ReorderThreshold: threshold,
		TargetLevel:      targetLevel,

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogPretty: getEnvBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the reorder policy is usable
func (c Config) Validate() error {
	if c.ReorderThreshold <= 0 {
		return fmt.Errorf("RESTOCK_REORDER_THRESHOLD must be positive, got %d", c.ReorderThreshold)
	}
	if c.TargetLevel < c.ReorderThreshold {
		return fmt.Errorf("RESTOCK_TARGET_LEVEL (%d) must not be below RESTOCK_REORDER_THRESHOLD (%d)", c.TargetLevel, c.ReorderThreshold)
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("RESTOCK_OUTPUT cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt falls back only when key is unset; a malformed value is an error
func getEnvInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
