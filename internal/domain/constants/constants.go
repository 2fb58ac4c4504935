// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors, matched against config.PubSub.Provider.
const (
	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
