package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Структура конфигурации для сервера
type Config struct {
	StoreInterval      time.Duration
	FileStoragePath    string
	Restore            bool
	Address            string
	DBConnectionString string
	Key                string
	CatalogPath        string
	// Запросов в секунду на клиента, 0 - без ограничения
	RateLimit float64
}

func InitConfig() Config {
	cfg, err := Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		// flag.CommandLine завершает процесс при ошибке разбора
		panic(err)
	}
	return cfg
}

// Parse reads flags from args and then applies environment overrides.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	defaultStoreInterval := 300 * time.Second
	defaultFileStoragePath := "measures.json"
	defaultRestore := true
	defaultDBConnectionString := ""
	defaultAddress := "localhost:8080"
	defaultCatalogPath := "configs/metrics.yaml"

	address := fs.String("a", defaultAddress, "HTTP server address (without http:// or https://)")
	storeInterval := fs.Int("i", int(defaultStoreInterval.Seconds()), "Interval for saving measures (in seconds)")
	fileStoragePath := fs.String("f", defaultFileStoragePath, "Path to file where measures will be saved")
	restore := fs.Bool("r", defaultRestore, "Restore measures from file on start (true/false)")
	DBConnectionString := fs.String("d", defaultDBConnectionString, "DB connection string")
	key := fs.String("k", "", "Key for HMAC signatures")
	catalogPath := fs.String("m", defaultCatalogPath, "Path to metric catalog (YAML)")
	rateLimit := fs.Float64("l", 0, "Requests per second per client, 0 disables limiting")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if envAddress := os.Getenv("ADDRESS"); envAddress != "" {
		*address = envAddress
	}

	if envDBDSN := os.Getenv("DATABASE_DSN"); envDBDSN != "" {
		*DBConnectionString = envDBDSN
	}

	// Чтение из переменных окружения
	if envStoreInterval := os.Getenv("STORE_INTERVAL"); envStoreInterval != "" {
		if si, err := time.ParseDuration(envStoreInterval + "s"); err == nil {
			*storeInterval = int(si.Seconds())
		}
	}

	if envFileStoragePath := os.Getenv("FILE_STORAGE_PATH"); envFileStoragePath != "" {
		*fileStoragePath = envFileStoragePath
	}

	if envRestore := os.Getenv("RESTORE"); envRestore != "" {
		*restore = envRestore == "true"
	}

	if envKey := os.Getenv("KEY"); envKey != "" {
		*key = envKey
	}

	if envCatalog := os.Getenv("METRICS_CATALOG"); envCatalog != "" {
		*catalogPath = envCatalog
	}

	if envRateLimit := os.Getenv("RATE_LIMIT"); envRateLimit != "" {
		if rl, err := strconv.ParseFloat(envRateLimit, 64); err == nil {
			*rateLimit = rl
		}
	}

	return Config{
		StoreInterval:      time.Duration(*storeInterval) * time.Second,
		FileStoragePath:    *fileStoragePath,
		Restore:            *restore,
		Address:            *address,
		DBConnectionString: *DBConnectionString,
		Key:                *key,
		CatalogPath:        *catalogPath,
		RateLimit:          *rateLimit,
	}, nil
}
