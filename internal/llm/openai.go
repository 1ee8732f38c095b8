package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"codeberg.org/racewiki/server/internal/metrics"
)

const (
	defaultOpenAIEmbedModel   = string(openai.SmallEmbedding3)
	defaultOpenAICaptionModel = openai.GPT4oMini
)

type OpenAIConfig struct {
	APIKey           string
	BaseURL          string
	EmbedderModel    string // e.g., "text-embedding-3-small"
	CaptionModel     string // e.g., "gpt-4o-mini"
	Dimensions       int
	CaptionMaxTokens int
}

type OpenAIClient struct {
	client *openai.Client
	config OpenAIConfig
}

func NewOpenAIClient(config OpenAIConfig) *OpenAIClient {
	if config.EmbedderModel == "" {
		config.EmbedderModel = defaultOpenAIEmbedModel
	}

	if config.CaptionModel == "" {
		config.CaptionModel = defaultOpenAICaptionModel
	}

	if config.CaptionMaxTokens == 0 {
		config.CaptionMaxTokens = defaultCaptionMaxTokens
	}

	clientCfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientCfg.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		config: config,
	}
}

func (o *OpenAIClient) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := o.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return embeddings[0], nil
}

func (o *OpenAIClient) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	req := openai.EmbeddingRequest{
		Input:          texts,
		Model:          openai.EmbeddingModel(o.config.EmbedderModel),
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	}
	if o.config.Dimensions > 0 {
		req.Dimensions = o.config.Dimensions
	}

	start := time.Now()

	resp, err := o.client.CreateEmbeddings(ctx, req)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(string(ProviderOpenAI), o.config.EmbedderModel, "error").Inc()
		return nil, parseAPIError(err)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(string(ProviderOpenAI), o.config.EmbedderModel, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(string(ProviderOpenAI), o.config.EmbedderModel).Observe(time.Since(start).Seconds())

	embeddings := make([][]float32, len(texts))
	for _, data := range resp.Data {
		if data.Index < 0 || data.Index >= len(embeddings) {
			return nil, fmt.Errorf("embedding index %d out of range", data.Index)
		}

		embeddings[data.Index] = data.Embedding
	}

	return embeddings, nil
}

func (o *OpenAIClient) CaptionImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("no image provided")
	}

	if mimeType == "" {
		mimeType = DefaultImageMIME
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.config.CaptionModel,
		MaxTokens:   o.config.CaptionMaxTokens,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURI, Detail: openai.ImageURLDetailLow},
				},
			},
		}},
	})

	if err != nil {
		metrics.CaptionRequestsTotal.WithLabelValues(string(ProviderOpenAI), "error").Inc()
		return "", parseAPIError(err)
	}

	metrics.CaptionRequestsTotal.WithLabelValues(string(ProviderOpenAI), "success").Inc()

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// flattens go-openai error types into a readable message
func parseAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("API request failed with status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("API request failed with status %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}

	return fmt.Errorf("failed to send request: %w", err)
}
