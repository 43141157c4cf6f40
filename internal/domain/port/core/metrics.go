package core

// Metrics records business counters for the settlement pipeline
type Metrics interface {
	QuoteServed(speed, source string)
	WebhookProcessed(kind, result string)
	StatusChanged(from, to string)
	BridgeAttempt(outcome string, elapsed Duration)
	ProviderCall(provider, operation, outcome string)
}
