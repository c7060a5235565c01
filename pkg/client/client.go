package client

import (
	"time"

	"github.com/devnest/cli/pkg/config"
	"github.com/devnest/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
)

var httpClient *resty.Client

// Init initializes the HTTP client for the Project Directory Service
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "DevNest-CLI/0.1.0")

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the bearer credential for the next requests. Tokens are
// short-lived, so callers set a fresh one immediately before each
// authenticated call.
func SetAuthToken(token string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetHeader("Authorization", "Bearer "+token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	if httpClient == nil {
		Init()
	}
	httpClient.Header.Del("Authorization")
}

// SetBaseURL points the client at a different Directory Service, used by
// tests to target a local fake.
func SetBaseURL(baseURL string) {
	GetClient().SetBaseURL(baseURL)
}
