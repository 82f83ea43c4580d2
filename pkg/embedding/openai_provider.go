package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"robotics-rag-be/internal/pkg/apperrors"
)

type OpenAIProvider struct {
	ApiKey     string
	BaseURL    string
	Model      string
	Dimension  int
	HttpClient *http.Client
}

var _ Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, model string, dimension int) *OpenAIProvider {
	return &OpenAIProvider{
		ApiKey:    apiKey,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Model:     model,
		Dimension: dimension,
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type openAIEmbedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type openAIEmbedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: embedding input must not be empty", apperrors.ErrInvalid)
	}

	reqBody := openAIEmbedRequest{
		Model: p.Model,
		Input: text,
	}
	reqJson, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := p.BaseURL + "/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.HttpClient.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("openai embeddings", err)
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperrors.Upstream("openai embeddings", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, apperrors.Upstream("openai embeddings",
			fmt.Errorf("status %d, body %s", res.StatusCode, string(resByte)))
	}

	var out openAIEmbedResponse
	if err := json.Unmarshal(resByte, &out); err != nil {
		return nil, apperrors.Upstream("openai embeddings", err)
	}
	if len(out.Data) == 0 {
		return nil, apperrors.Upstream("openai embeddings", fmt.Errorf("response has no embeddings"))
	}

	vector := out.Data[0].Embedding
	if len(vector) != p.Dimension {
		return nil, apperrors.Upstream("openai embeddings",
			fmt.Errorf("expected %d dimensions, got %d", p.Dimension, len(vector)))
	}

	return vector, nil
}

func (p *OpenAIProvider) Dimensions() int {
	return p.Dimension
}
