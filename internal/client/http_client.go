package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/anmicius0/lexicon/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	DefaultTimeout = 30 * time.Second
	maxLoggedBody  = 1000
)

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient with JSON headers.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
	}
}

// DoReq performs an HTTP request with the given method, endpoint and body.
// Responses with status >= 400 are returned as *HTTPError.
func (c *HTTPClient) DoReq(method, endpoint string, body any) (*resty.Response, error) {
	request := c.client.R()
	if body != nil {
		request.SetBody(body)
	}

	utils.Logger.Debug("HTTP request start",
		zap.String(utils.FieldMethod, method),
		zap.String(utils.FieldPath, endpoint))

	start := time.Now()
	response, err := request.Execute(method, endpoint)
	duration := time.Since(start)
	if err != nil {
		utils.Logger.Error("HTTP request failed",
			zap.String(utils.FieldMethod, method),
			zap.String(utils.FieldPath, endpoint),
			zap.Error(err))
		return nil, err
	}

	if response.StatusCode() >= 400 {
		responseBody := strings.TrimSpace(response.String())
		if len(responseBody) > maxLoggedBody {
			responseBody = responseBody[:maxLoggedBody] + "…"
		}
		logFn := utils.Logger.Warn
		if response.StatusCode() >= 500 {
			logFn = utils.Logger.Error
		}
		logFn("API error response",
			zap.String(utils.FieldMethod, method),
			zap.String(utils.FieldURL, response.Request.URL),
			zap.Int(utils.FieldStatus, response.StatusCode()),
			zap.String("body", responseBody),
			zap.Duration(utils.FieldDuration, duration))
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: responseBody}
	}

	utils.Logger.Debug("HTTP request completed",
		zap.String(utils.FieldMethod, method),
		zap.String(utils.FieldURL, response.Request.URL),
		zap.Int(utils.FieldStatus, response.StatusCode()),
		zap.Duration(utils.FieldDuration, duration))

	return response, nil
}

// Close releases idle connections held by the underlying client.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}
