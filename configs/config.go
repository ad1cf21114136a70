package configs

import (
	"fmt"

	"github.com/caarlos0/env/v7"
)

type ElectionStateServiceConfig struct {
	App         App
	DB          DB
	Logger      Logger
	Election    Election
	Telegram    Telegram
	Discord     Discord
	HealthCheck HealthCheck
}

type ContactSyncServiceConfig struct {
	App         App
	DB          DB
	Logger      Logger
	Mailchimp   Mailchimp
	HealthCheck HealthCheck
}

type ElectionBotConfig struct {
	App      App
	DB       DB
	Logger   Logger
	Telegram Telegram
}

func LoadElectionStateServiceConfig() (ElectionStateServiceConfig, error) {
	var config ElectionStateServiceConfig

	if err := env.Parse(&config); err != nil {
		return ElectionStateServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadContactSyncServiceConfig() (ContactSyncServiceConfig, error) {
	var config ContactSyncServiceConfig

	if err := env.Parse(&config); err != nil {
		return ContactSyncServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Mailchimp.BatchSize <= 0 {
		return ContactSyncServiceConfig{}, fmt.Errorf("failed to parse config: CONTACT_SYNC_BATCH_SIZE must be positive")
	}

	return config, nil
}

func LoadElectionBotConfig() (ElectionBotConfig, error) {
	var config ElectionBotConfig

	if err := env.Parse(&config); err != nil {
		return ElectionBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Telegram.Token == "" {
		return ElectionBotConfig{}, fmt.Errorf("failed to parse config: TELEGRAM_BOT_TOKEN is required")
	}

	if len(config.Telegram.OperatorIDs) == 0 {
		return ElectionBotConfig{}, fmt.Errorf("failed to parse config: TELEGRAM_OPERATOR_IDS is required")
	}

	return config, nil
}
