package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Allowed fractional divergence of a reported settlementAmount from the
	// posting's expectedSettlementAmount (0.10 = plus or minus 10%).
	MaxSettlementDivergence float64 `envconfig:"MAX_SETTLEMENT_DIVERGENCE" default:"0.10"`

	// Cognito Auth
	CognitoClientID  string `envconfig:"COGNITO_CLIENT_ID"`
	CognitoIssuerURL string `envconfig:"COGNITO_ISSUER_URL"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
