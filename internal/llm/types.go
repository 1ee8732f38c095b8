package llm

import "context"

// combines embedding generation and image captioning
type LLM interface {
	Embedder
	Captioner
}

// represents different generative AI providers
type Provider string

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// describes an image as free text following the given instruction
type Captioner interface {
	CaptionImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

const DefaultImageMIME = "image/jpeg"

// holds configuration for LLM initialization
type Config struct {
	Provider Provider
	APIKey   string
	BaseURL  string // optional, overrides the provider endpoint

	EmbedderModel string // e.g., "text-embedding-004"
	Dimensions    int    // vector length stored in the database

	CaptionModel     string // e.g., "gemini-1.5-flash"
	CaptionMaxTokens int
}
