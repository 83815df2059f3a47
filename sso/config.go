package sso

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config carries the two process-wide handshake parameters. Both can also be
// supplied per call via WithSecret and WithBaseURL, which take priority.
type Config struct {
	Secret string `env:"DISCOURSE_SSO_SECRET,required"` // Shared HMAC key
	URL    string `env:"DISCOURSE_SSO_URL,required"`    // Endpoint that receives the signed response
}

var (
	cfg  Config
	once sync.Once
)

// LoadConfig reads the configuration from environment variables, falling back
// to a .env file in the working directory. Parsing happens once per process;
// subsequent calls return the cached value.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		var c Config
		if err = env.Parse(&c); err != nil {
			return
		}
		cfg = c
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
