package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// Структура конфигурации для агента
type Config struct {
	Address        string
	ReportInterval time.Duration
	PollInterval   time.Duration
	Key            string
	// Компонент, от имени которого отправляются измерения
	Component string
}

func InitConfig() Config {
	cfg, err := Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}

func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	// Значения по умолчанию
	defaultAddress := "localhost:8080"
	defaultReportInterval := 10 * time.Second
	defaultPollInterval := 2 * time.Second
	defaultCryptoKey := ""
	defaultComponent, err := os.Hostname()
	if err != nil || defaultComponent == "" {
		defaultComponent = "localhost"
	}

	// Читаем флаги командной строки
	address := fs.String("a", defaultAddress, "HTTP server address (without http:// or https://)")
	reportInterval := fs.Int("r", int(defaultReportInterval.Seconds()), "Report interval in seconds")
	pollInterval := fs.Int("p", int(defaultPollInterval.Seconds()), "Poll interval in seconds")
	cryptoKey := fs.String("k", defaultCryptoKey, "Crypto key for hmac")
	component := fs.String("c", defaultComponent, "Component name for sent measures")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Читаем переменные окружения
	if envAddress := os.Getenv("ADDRESS"); envAddress != "" {
		*address = envAddress
	}

	if envCryptoKey := os.Getenv("KEY"); envCryptoKey != "" {
		*cryptoKey = envCryptoKey
	}

	if envReportInterval := os.Getenv("REPORT_INTERVAL"); envReportInterval != "" {
		if ri, err := time.ParseDuration(envReportInterval + "s"); err == nil {
			*reportInterval = int(ri.Seconds())
		}
	}

	if envPollInterval := os.Getenv("POLL_INTERVAL"); envPollInterval != "" {
		if pi, err := time.ParseDuration(envPollInterval + "s"); err == nil {
			*pollInterval = int(pi.Seconds())
		}
	}

	if envComponent := os.Getenv("COMPONENT"); envComponent != "" {
		*component = envComponent
	}

	finalAddress := *address
	if !strings.HasPrefix(finalAddress, "http://") && !strings.HasPrefix(finalAddress, "https://") {
		finalAddress = "http://" + finalAddress
	}

	return Config{
		Address:        finalAddress,
		ReportInterval: time.Duration(*reportInterval) * time.Second,
		PollInterval:   time.Duration(*pollInterval) * time.Second,
		Key:            *cryptoKey,
		Component:      *component,
	}, nil
}
