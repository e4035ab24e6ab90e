package constants

// EnvProduction selects production defaults such as the strict password policy.
const EnvProduction = "production"

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
