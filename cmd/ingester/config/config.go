package config

// Config holds application configuration.
type Config struct {
	DatabaseURL         string `env:"DATABASE_URL"`
	BatchSize           uint   `env:"BATCH_SIZE" envDefault:"50"`
	DefaultCurrencyCode string `env:"DEFAULT_CURRENCY_CODE" envDefault:"INR"`
	SkipDuplicates      bool   `env:"SKIP_DUPLICATES" envDefault:"false"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"spa-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"staging-ingester.commands"`
}
