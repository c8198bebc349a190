package config

import (
	"presence-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Presence: Presence{
			DataCSVPath:            utils.GetEnvString("PRESENCE_DATA_CSV", "data/sample_data.csv"),
			UsersXMLPath:           utils.GetEnvString("PRESENCE_USERS_XML", "data/users.xml"),
			CacheDurationInSeconds: utils.GetEnvInt("PRESENCE_CACHE_DURATION_IN_SECONDS", 600),
			CacheDeepCopy:          utils.GetEnvBool("PRESENCE_CACHE_DEEP_COPY", true),
		},
	}
}
