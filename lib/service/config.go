package service

import (
	"github.com/shopspring/decimal"
)

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl         string  `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	JWTSecret               []byte  `envconfig:"JWT_SECRET" required:"true"`
	JWTRefreshTokenExpiry   int     `envconfig:"JWT_REFRESH_EXPIRY" default:"604800"` // in seconds, default 7 days
	JWTAccessTokenExpiry    int     `envconfig:"JWT_ACCESS_EXPIRY" default:"172800"`  // in seconds, default 2 days
	Host                    string  `envconfig:"HOST" default:"localhost:3000"`
	Port                    int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	AllowClientCreation     bool    `envconfig:"ALLOW_CLIENT_CREATION" default:"true"`
	// Upper bound for a single transaction, prevents fat-finger entries
	MaxTransactionAmount decimal.Decimal `envconfig:"MAX_TRANSACTION_AMOUNT" default:"100000.00"`
	// Share of the amount retained when transferring between different clients
	TransferFeeRate decimal.Decimal `envconfig:"TRANSFER_FEE_RATE" default:"0.10"`
	AmqpUri         string          `envconfig:"AMQP_URI"`
	AmqpExchange    string          `envconfig:"AMQP_EXCHANGE" default:"contahub_transactions"`
	Branding        BrandingConfig
}

type BrandingConfig struct {
	Title string `envconfig:"BRANDING_TITLE" default:"contahub - simple banking"`
	Desc  string `envconfig:"BRANDING_DESC" default:"Accounts, deposits, withdrawals and transfers on an append-only ledger"`
	Url   string `envconfig:"BRANDING_URL" default:"https://contahub.example.com"`
}
