package config

type InternalConfig struct {
	App    App    `mapstructure:"app"`
	Athena Athena `mapstructure:"athena"`
	Logger Logger `mapstructure:"logger"`
}

type App struct {
	Env             string   `mapstructure:"env" env:"APP_ENV" validate:"oneof=development staging production"`
	Port            int      `mapstructure:"port" env:"PORT" validate:"min=1"`
	Version         string   `mapstructure:"version" env:"APP_VERSION"`
	AllowedOrigins  []string `mapstructure:"allowed_origins" env:"APP_ALLOWED_ORIGINS" validate:"min=1,dive,required"`
	MaxRequests     int      `mapstructure:"max_requests" env:"APP_MAX_REQUESTS" validate:"min=1"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout" env:"APP_SHUTDOWN_TIMEOUT" validate:"gte=0"`
}

// Athena holds the client credentials and endpoints of the athenahealth
// platform. ClientID and ClientSecret have no defaults.
type Athena struct {
	ClientID             string `mapstructure:"client_id" env:"CLIENT_ID" validate:"required"`
	ClientSecret         string `mapstructure:"client_secret" env:"SECRET" validate:"required"`
	AuthBaseUrl          string `mapstructure:"auth_base_url" env:"ATHENA_AUTH_BASE_URL" validate:"required,url"`
	ApiBaseUrl           string `mapstructure:"api_base_url" env:"ATHENA_API_BASE_URL" validate:"required,url"`
	PracticeID           string `mapstructure:"practice_id" env:"ATHENA_PRACTICE_ID" validate:"required"`
	Scope                string `mapstructure:"scope" env:"ATHENA_SCOPE" validate:"required"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds" env:"ATHENA_HTTP_TIMEOUT_IN_SECONDS" validate:"gte=0"`
}

type Logger struct {
	Level               string `mapstructure:"level" env:"LOGGER_LEVEL"`
	OutputFileName      string `mapstructure:"output_file_name" env:"LOGGER_OUTPUT_FILENAME"`
	OutputErrorFileName string `mapstructure:"output_error_file_name" env:"LOGGER_OUTPUT_ERROR_FILENAME"`
}
