package config

// EnvPrefix is the envconfig prefix shared by every DealerDesk process.
const EnvPrefix = "dealerdesk"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "DEALERDESK_DB_DSN"
	EnvDBHost = "DEALERDESK_DB_HOST"
	EnvDBUser = "DEALERDESK_DB_USER"
	EnvDBName = "DEALERDESK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
