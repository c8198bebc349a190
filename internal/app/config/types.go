package config

type (
	InternalConfig struct {
		App      App
		Presence Presence
	}
	App struct {
		Env             string `validate:"required,oneof=development production test"`
		Port            string `validate:"required"`
		Version         string `validate:"required"`
		EndpointPrefix  string `validate:"required"`
		MaxRequests     int    `validate:"gt=0"`
		ShutdownTimeout int    `validate:"gt=0"`
	}
	Presence struct {
		DataCSVPath            string `validate:"required"`
		UsersXMLPath           string `validate:"required"`
		CacheDurationInSeconds int
		CacheDeepCopy          bool
	}
)

type (
	DriverConfig struct {
		Logger Logger
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
