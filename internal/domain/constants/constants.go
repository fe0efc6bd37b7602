// Package constants holds shared domain constants.
package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Caller roles produced by the authentication boundary.
const (
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
