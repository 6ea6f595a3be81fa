package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, populated from the environment.
// A .env file is honoured in development via godotenv autoload in main.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// DynamoDBEndpoint points the SDK at a local DynamoDB; empty means AWS.
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
