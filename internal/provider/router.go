package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Retry defaults: up to MaxRetries attempts per call, with a backoff of
// BackoffBase * attempt between failures.
const (
	DefaultMaxRetries  = 3
	DefaultBackoffBase = time.Second
)

// Router resolves model identifiers to provider adapters and drives the
// retry/backoff loop around each call. All fields are plain values so
// tests can build routers against fake upstreams with tight timings.
type Router struct {
	Registry    Registry
	Client      *http.Client
	Limiter     *rate.Limiter
	MaxRetries  int
	BackoffBase time.Duration
}

// NewRouter builds a Router with production defaults: a 60s HTTP client
// and a 2-requests-per-second limiter to stay inside common per-key
// provider rate limits.
func NewRouter(registry Registry) *Router {
	return &Router{
		Registry:    registry,
		Client:      &http.Client{Timeout: 60 * time.Second},
		Limiter:     rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		MaxRetries:  DefaultMaxRetries,
		BackoffBase: DefaultBackoffBase,
	}
}

// Invoke sends one prompt to the provider behind modelKey and returns the
// normalized response text. Configuration failures (unknown model, missing
// credential) return immediately; transport and response failures are
// retried with backoff until MaxRetries attempts are spent, after which a
// retry_exhausted error wrapping the last failure is returned.
func (r *Router) Invoke(ctx context.Context, prompt, modelKey string, credentials map[string]string) (string, error) {
	cfg, ok := r.Registry[modelKey]
	if !ok {
		return "", &CallError{Kind: KindUnknownModel, Model: modelKey, Err: fmt.Errorf("model %s is not configured", modelKey)}
	}

	apiKey, ok := credentials[cfg.Provider]
	if !ok || apiKey == "" {
		return "", &CallError{Kind: KindMissingCredential, Model: modelKey, Err: fmt.Errorf("no credential supplied for provider %s", cfg.Provider)}
	}

	var lastErr *CallError
	for attempt := 1; attempt <= r.MaxRetries; attempt++ {
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		text, callErr := r.callOnce(ctx, cfg, prompt, apiKey, modelKey)
		if callErr == nil {
			return text, nil
		}
		if !retryable(callErr.Kind) {
			return "", callErr
		}
		lastErr = callErr

		if attempt < r.MaxRetries {
			// Backoff grows linearly with the attempt number. The sleep
			// watches the context so an aborted stream stops the loop
			// mid-delay instead of after it.
			select {
			case <-time.After(r.BackoffBase * time.Duration(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", &CallError{Kind: KindRetryExhausted, Model: modelKey, Err: lastErr}
}

// callOnce performs a single request/response cycle against the adapter
func (r *Router) callOnce(ctx context.Context, cfg AdapterConfig, prompt, apiKey, modelKey string) (string, *CallError) {
	req, err := buildRequest(ctx, cfg, prompt, apiKey)
	if err != nil {
		return "", &CallError{Kind: KindRequestFailed, Model: modelKey, Err: err}
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", &CallError{Kind: KindRequestFailed, Model: modelKey, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CallError{Kind: KindRequestFailed, Model: modelKey, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &CallError{
			Kind:  KindBadStatus,
			Model: modelKey,
			Err:   fmt.Errorf("%s API returned status %d: %s", cfg.Provider, resp.StatusCode, truncateBody(body)),
		}
	}

	text, err := extractText(cfg, body)
	if err != nil {
		return "", &CallError{Kind: KindMalformedResponse, Model: modelKey, Err: err}
	}
	if text == "" {
		return "", &CallError{Kind: KindEmptyResponse, Model: modelKey, Err: fmt.Errorf("no content in %s response", cfg.Provider)}
	}

	return text, nil
}

// truncateBody keeps error messages readable when an upstream returns a
// large error page
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
