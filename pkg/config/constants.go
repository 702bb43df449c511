package config

const (
	// EnvPrefix namespaces every environment variable this service reads.
	EnvPrefix = "CARDLINK"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "CARDLINK_APP_ENV"
	EnvDBDSN  = "CARDLINK_DB_DSN"
	EnvDBHost = "CARDLINK_DB_HOST"
	EnvDBUser = "CARDLINK_DB_USER"
	EnvDBName = "CARDLINK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
