package ai

import "context"

// Summarizer is the interface for AI transcript summarization.
// Implement this interface to add new AI providers (Gemini, Ollama, etc.)
type Summarizer interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
)
