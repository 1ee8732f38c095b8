package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"codeberg.org/racewiki/server/internal/metrics"
)

const (
	geminiBaseURL             = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiEmbedModel   = "text-embedding-004"
	defaultGeminiCaptionModel = "gemini-1.5-flash"
)

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (20 requests/second with burst capacity of 10)
var geminiRateLimiter = rate.NewLimiter(20, 10)

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type embedContentRequest struct {
	Model                string        `json:"model"`
	Content              geminiContent `json:"content"`
	OutputDimensionality int           `json:"outputDimensionality,omitempty"`
}

type batchEmbedRequest struct {
	Requests []embedContentRequest `json:"requests"`
}

type geminiEmbedding struct {
	Values []float32 `json:"values"`
}

type batchEmbedResponse struct {
	Embeddings []geminiEmbedding `json:"embeddings"`
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float32 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type GeminiConfig struct {
	APIKey           string
	BaseURL          string
	EmbedderModel    string // e.g., "text-embedding-004"
	CaptionModel     string // e.g., "gemini-1.5-flash"
	Dimensions       int
	CaptionMaxTokens int
}

// talks to the Gemini REST API for both embeddings and captions
type GeminiClient struct {
	config     GeminiConfig
	httpClient *http.Client
}

func NewGeminiClient(config GeminiConfig) *GeminiClient {
	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}

	if config.EmbedderModel == "" {
		config.EmbedderModel = defaultGeminiEmbedModel
	}

	if config.CaptionModel == "" {
		config.CaptionModel = defaultGeminiCaptionModel
	}

	if config.CaptionMaxTokens == 0 {
		config.CaptionMaxTokens = defaultCaptionMaxTokens
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &GeminiClient{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (g *GeminiClient) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := g.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return embeddings[0], nil
}

func (g *GeminiClient) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	model := "models/" + g.config.EmbedderModel
	reqBody := batchEmbedRequest{Requests: make([]embedContentRequest, len(texts))}

	for i, text := range texts {
		reqBody.Requests[i] = embedContentRequest{
			Model:                model,
			Content:              geminiContent{Parts: []geminiPart{{Text: text}}},
			OutputDimensionality: g.config.Dimensions,
		}
	}

	start := time.Now()

	var embResp batchEmbedResponse
	err := g.post(ctx, g.config.EmbedderModel+":batchEmbedContents", reqBody, &embResp)

	if err == nil && len(embResp.Embeddings) != len(texts) {
		err = fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embResp.Embeddings))
	}

	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(string(ProviderGemini), g.config.EmbedderModel, "error").Inc()
		return nil, err
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(string(ProviderGemini), g.config.EmbedderModel, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(string(ProviderGemini), g.config.EmbedderModel).Observe(time.Since(start).Seconds())

	embeddings := make([][]float32, len(embResp.Embeddings))
	for i, emb := range embResp.Embeddings {
		embeddings[i] = emb.Values
	}

	return embeddings, nil
}

func (g *GeminiClient) CaptionImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("no image provided")
	}

	if mimeType == "" {
		mimeType = DefaultImageMIME
	}

	reqBody := generateContentRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: prompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: g.config.CaptionMaxTokens,
			Temperature:     0.2,
		},
	}

	var genResp generateContentResponse
	if err := g.post(ctx, g.config.CaptionModel+":generateContent", reqBody, &genResp); err != nil {
		metrics.CaptionRequestsTotal.WithLabelValues(string(ProviderGemini), "error").Inc()
		return "", err
	}

	metrics.CaptionRequestsTotal.WithLabelValues(string(ProviderGemini), "success").Inc()

	var sb strings.Builder
	for _, cand := range genResp.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}

		if sb.Len() > 0 {
			break
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// sends a JSON request to models/{method} and decodes the response into out
func (g *GeminiClient) post(ctx context.Context, method string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", g.config.BaseURL, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.config.APIKey)

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
