package reportservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ourilentes/premios/pkg/clients"
	"go.uber.org/zap"
)

const (
	geminiModel   = "gemini-2.5-flash"
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the Gemini REST generateContent endpoint. A client built
// without an API key reports itself disabled and is never called.
type GeminiClient struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func NewGeminiClient(url, apiKey string, client clients.HTTPClientI) *GeminiClient {
	return &GeminiClient{
		url:    url,
		apiKey: apiKey,
		client: client,
	}
}

func (c *GeminiClient) Enabled() bool {
	return c.apiKey != ""
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.url + "/v1beta/models/" + geminiModel + ":generateContent?key=" + c.apiKey
	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			statusCode, respBody, respHeaders, err := c.client.Post(url, headers, bytes.NewReader(payload))
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return "", fmt.Errorf("gemini request failed after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusOK:
				return parseGeminiResponse(respBody)
			case http.StatusTooManyRequests, http.StatusServiceUnavailable:
				retryAfter := retryInterval * time.Duration(attempt)
				if header := respHeaders.Get("Retry-After"); header != "" {
					if seconds, err := strconv.Atoi(header); err == nil {
						retryAfter = time.Duration(seconds) * time.Second
					}
				}
				zap.L().Warn("gemini rate limited, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
				if attempt < maxRetries {
					time.Sleep(retryAfter)
					continue
				}
				return "", fmt.Errorf("gemini rate limited after %d retries", maxRetries)
			default:
				zap.L().Error("unexpected gemini status code", zap.Int("status", statusCode))
				return "", fmt.Errorf("unexpected gemini status code: %d", statusCode)
			}
		}
	}
	return "", errors.New("gemini request failed")
}

func parseGeminiResponse(respBody []byte) (string, error) {
	var response geminiResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}
