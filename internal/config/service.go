package config

type ServiceConfig struct {
	Name                string      `yaml:"name"`
	Environment         string      `yaml:"environment"`
	Version             string      `yaml:"version"`
	ClientURL           string      `yaml:"client_url"`
	StripeSecretKey     string      `yaml:"stripe_secret_key"`
	StripeWebhookSecret string      `yaml:"stripe_webhook_secret"`
	JWTSecret           string      `yaml:"jwt_secret"`
	Nango               NangoConfig `yaml:"nango"`
}

// NangoConfig holds settings for the Nango connection-management service.
type NangoConfig struct {
	BaseURL   string `yaml:"base_url"`
	SecretKey string `yaml:"secret_key"`
}
