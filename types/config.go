/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	DataDir   string          `mapstructure:"dataDir" validate:"required"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Plan      PlanConfig      `mapstructure:"plan"`
	Quotes    QuotesConfig    `mapstructure:"quotes"`
	Narration NarrationConfig `mapstructure:"narration"`
	Image     ImageConfig     `mapstructure:"image"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// StorageConfig selects the key-value backend used for persisted state.
type StorageConfig struct {
	Backend   string `mapstructure:"backend" validate:"required,oneof=sqlite file redis memory"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redisAddr" validate:"required_if=Backend redis"`
	RedisDB   int    `mapstructure:"redisDb" validate:"omitempty,min=0,max=15"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// LLMConfig holds configuration for the plan generation service.
type LLMConfig struct {
	Provider    string   `mapstructure:"provider" validate:"omitempty,oneof=gemini openai ollama anthropic"`
	Models      []string `mapstructure:"models" validate:"omitempty,dive,min=1"`
	APIKey      string   `mapstructure:"apiKey"`
	BaseURL     string   `mapstructure:"baseURL" validate:"omitempty,url"`
	Temperature float64  `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	// RequestTimeoutSeconds bounds a single upstream call; 0 leaves it to the transport.
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}

// PlanConfig controls prompt templates and plan review policies.
type PlanConfig struct {
	TemplatesDir   string `mapstructure:"templatesDir"`
	PoliciesDir    string `mapstructure:"policiesDir"`
	StrictPolicies bool   `mapstructure:"strictPolicies"`
}

// QuotesConfig lists the external quote sources in priority order.
type QuotesConfig struct {
	Sources        []string `mapstructure:"sources" validate:"omitempty,dive,url"`
	TimeoutSeconds int      `mapstructure:"timeoutSeconds" validate:"omitempty,min=1,max=60"`
}

// NarrationConfig holds the text-to-speech settings.
type NarrationConfig struct {
	APIKey  string `mapstructure:"apiKey"`
	VoiceID string `mapstructure:"voiceId"`
	ModelID string `mapstructure:"modelId"`
	BaseURL string `mapstructure:"baseURL" validate:"omitempty,url"`
}

// ImageConfig holds the image generation settings.
type ImageConfig struct {
	Model    string `mapstructure:"model"`
	FontPath string `mapstructure:"fontPath"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// TelemetryConfig controls anonymous usage events.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	APIKey      string `mapstructure:"apiKey"`
	Endpoint    string `mapstructure:"endpoint" validate:"omitempty,url"`
	AnonymousID string `mapstructure:"anonymousId" validate:"omitempty,uuid4"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sampleRatio" validate:"omitempty,min=0,max=1"`
}
