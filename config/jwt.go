package config

// Jwt verifies the session tokens issued by Clerk. PublicKey (PEM, RS256) is what
// production uses; Secret (HS256) exists for local development and tests.
type Jwt struct {
	PublicKey string `json:"public_key" yaml:"public_key"`
	Secret    string `json:"secret" yaml:"secret"`
	Issuer    string `json:"issuer" yaml:"issuer"`
}

type Webhook struct {
	ClerkSecret string `json:"clerk_secret" yaml:"clerk_secret"`
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}

func ProvideWebhookConfig(cfg *Config) *Webhook {
	return cfg.Webhook
}
