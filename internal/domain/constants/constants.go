// Package constants holds values shared across layers that are not tied to a single entity.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used in production.
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Blob key prefixes for uploaded media.
const (
	MediaPrefixProducts = "products"
	MediaPrefixOrders   = "orders"
	MediaPrefixPayments = "payments"
	MediaPrefixChat     = "chat"
)
