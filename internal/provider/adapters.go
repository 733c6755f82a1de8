package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Shared generation parameters across protocols
const (
	callTemperature = 0.7
	callMaxTokens   = 500
	systemPrompt    = "You are a helpful assistant."
)

// ------------------- Request Payloads -------------------

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionRequest struct {
	Prompt            string `json:"prompt"`
	Model             string `json:"model"`
	MaxTokensToSample int    `json:"max_tokens_to_sample"`
}

type textGenParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

type textGenRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters textGenParameters `json:"parameters"`
}

// ------------------- Response Shapes -------------------

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

type textGenResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// buildRequest assembles the provider-specific HTTP request for a prompt
func buildRequest(ctx context.Context, cfg AdapterConfig, prompt, apiKey string) (*http.Request, error) {
	var payload any
	switch cfg.Protocol {
	case ProtocolChat:
		payload = chatRequest{
			Model: cfg.ModelName,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: prompt},
			},
			Temperature: callTemperature,
			MaxTokens:   callMaxTokens,
		}
	case ProtocolCompletion:
		payload = completionRequest{
			Prompt:            prompt,
			Model:             cfg.ModelName,
			MaxTokensToSample: callMaxTokens,
		}
	case ProtocolTextGeneration:
		payload = textGenRequest{
			Inputs: prompt,
			Parameters: textGenParameters{
				MaxNewTokens: callMaxTokens,
				Temperature:  callTemperature,
			},
		}
	default:
		return nil, fmt.Errorf("unsupported protocol: %s", cfg.Protocol)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	// Anthropic's completion API authenticates with x-api-key, everything
	// else with a bearer token.
	if cfg.Protocol == ProtocolCompletion {
		req.Header.Set("x-api-key", apiKey)
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	}

	return req, nil
}

// extractText normalizes a provider response body down to a single string
func extractText(cfg AdapterConfig, body []byte) (string, error) {
	switch cfg.Protocol {
	case ProtocolChat:
		var resp chatResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil

	case ProtocolCompletion:
		var resp completionResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", err
		}
		return resp.Completion, nil

	case ProtocolTextGeneration:
		var resp textGenResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return "", err
		}
		if len(resp) == 0 {
			return "", nil
		}
		return resp[0].GeneratedText, nil
	}

	return "", fmt.Errorf("unsupported protocol: %s", cfg.Protocol)
}
