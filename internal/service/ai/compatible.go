package ai

// CompatibleProvider talks to any OpenAI-compatible endpoint. It reuses the
// OpenAI client with a mandatory base URL.
type CompatibleProvider struct {
	*OpenAIProvider
}

// NewCompatibleProvider creates a provider for OpenAI-compatible APIs.
func NewCompatibleProvider(apiKey, baseURL, model string) *CompatibleProvider {
	inner := NewOpenAIProvider(apiKey, baseURL, model)
	inner.name = ProviderCompatible
	return &CompatibleProvider{OpenAIProvider: inner}
}
