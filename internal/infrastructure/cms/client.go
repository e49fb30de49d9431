package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/luminaweb/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client handles communication with the headless CMS product API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new CMS API client. requestsPerHour bounds outgoing
// traffic against the CMS plan quota; zero falls back to 600/hour.
func NewClient(apiKey, baseURL string, requestsPerHour int, logger *zap.Logger) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 600
	}
	// rate.Limit is requests per second
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 10)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// SetTimeout overrides the HTTP client timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Lumina/1.0")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCMSFailure, err)
	}

	return resp, nil
}

// FetchProducts requests the active product records for a locale, ordered by
// the CMS sort-order field.
func (c *Client) FetchProducts(ctx context.Context, locale string) (*domain.CMSProductsResponse, error) {
	c.logger.Debug("fetching products from CMS", zap.String("locale", locale))

	endpoint := fmt.Sprintf("%s/v1/products", c.baseURL)
	params := url.Values{}
	params.Add("locale", locale)
	params.Add("active", "true")
	params.Add("order", "sortOrder")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Warn("CMS request error",
				zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.logger.Warn("CMS API error",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
				zap.String("body", truncate(string(body), 512)))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCMSFailure, resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				// Client errors other than 429 will not recover on retry
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var productsResp domain.CMSProductsResponse
		if err := json.Unmarshal(body, &productsResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(productsResp.Items) == 0 {
			c.logger.Warn("CMS returned no products", zap.String("locale", locale))
			return nil, domain.ErrEmptyCatalog
		}

		c.logger.Debug("fetched products from CMS",
			zap.String("locale", locale), zap.Int("count", len(productsResp.Items)))
		return &productsResp, nil
	}

	c.logger.Error("all CMS retries failed", zap.String("locale", locale), zap.Error(lastErr))
	return nil, lastErr
}

// exponentialBackoff returns the sleep duration before the next retry:
// 500ms, 1s, 2s for attempts 1, 2, 3.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// truncate limits log payloads to n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "... (" + strconv.Itoa(len(s)) + " bytes)"
}
