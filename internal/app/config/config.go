package config

import (
	"athena-relay-service/internal/pkg/constvars"
	"athena-relay-service/internal/pkg/exceptions"
	"athena-relay-service/internal/pkg/utils"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:            utils.GetEnvInt("PORT", 5007),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			AllowedOrigins:  utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3001"}),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUESTS", 120),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Athena: Athena{
			ClientID:             utils.GetEnvString("CLIENT_ID", ""),
			ClientSecret:         utils.GetEnvString("SECRET", ""),
			AuthBaseUrl:          utils.GetEnvString("ATHENA_AUTH_BASE_URL", constvars.AthenaDefaultBaseUrl),
			ApiBaseUrl:           utils.GetEnvString("ATHENA_API_BASE_URL", constvars.AthenaDefaultBaseUrl),
			PracticeID:           utils.GetEnvString("ATHENA_PRACTICE_ID", constvars.AthenaDefaultPracticeID),
			Scope:                utils.GetEnvString("ATHENA_SCOPE", constvars.AthenaDefaultScope),
			HTTPTimeoutInSeconds: utils.GetEnvInt("ATHENA_HTTP_TIMEOUT_IN_SECONDS", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

// Validate must pass before the server starts; a missing CLIENT_ID or SECRET
// is fatal.
func (c *InternalConfig) Validate() error {
	err := utils.ValidateStruct(c)
	if err != nil {
		return exceptions.ErrInvalidConfiguration(err)
	}
	return nil
}

func (a App) Address() string {
	return fmt.Sprintf(":%d", a.Port)
}

func (a Athena) TokenUrl() string {
	return strings.TrimRight(a.AuthBaseUrl, "/") + constvars.AthenaTokenPath
}

func (a Athena) PatientsUrl() string {
	return fmt.Sprintf(constvars.AthenaPatientPathFormat, strings.TrimRight(a.ApiBaseUrl, "/"), a.PracticeID)
}
