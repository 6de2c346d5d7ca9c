package main

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultListenAddress = ":8080"

const (
	DatabaseFilePathEnv    = "DATABASE_FILEPATH"
	ListenAddressEnv       = "LISTEN_ADDRESS"
	WebhookWorkersCountEnv = "WEBHOOK_WORKERS"
)

type Config struct {
	DatabaseFilePath    string
	ListenAddress       string
	WebhookWorkersCount int
}

// LoadConfig reads the service configuration from the environment.
func LoadConfig() (config Config, err error) {
	config = Config{
		DatabaseFilePath:    os.Getenv(DatabaseFilePathEnv),
		ListenAddress:       os.Getenv(ListenAddressEnv),
		WebhookWorkersCount: DefaultWebhookWorkersCount,
	}

	if config.ListenAddress == "" {
		config.ListenAddress = DefaultListenAddress
	}

	if workers := os.Getenv(WebhookWorkersCountEnv); workers != "" {
		config.WebhookWorkersCount, err = strconv.Atoi(workers)
		if err != nil {
			return config, fmt.Errorf("%s: %w", WebhookWorkersCountEnv, err)
		}
	}

	return config, nil
}
