package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// HTTP listen port
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Allowed CORS origins, comma separated
		AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	// OpenAI-compatible chat completion endpoint used by the delegated
	// valuation strategy. The API key is injected configuration and has
	// no default on purpose.
	OpenAI struct {
		APIKey  string `env:"OPENAI_API_KEY"`
		BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
		Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

		// Request timeout in seconds for the chat completion call
		Timeout int `env:"OPENAI_TIMEOUT" envDefault:"30"`
	}

	// Valuation tuning
	Valuation struct {
		// Number of comparables generated per valuation request
		ComparableCount int `env:"VALUATION_COMPARABLE_COUNT" envDefault:"12"`

		// Number of comparables echoed back in the result
		FeaturedCount int `env:"VALUATION_FEATURED_COUNT" envDefault:"6"`
	}

	// BatchProcessing configuration for listing ingest
	BatchProcessing struct {
		// Maximum number of listings to accumulate before processing
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Maximum time to wait before processing a non-full batch (in seconds)
		MaxBatchWaitTime int `env:"BATCH_WAIT_TIME" envDefault:"30"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
