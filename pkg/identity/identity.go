// Package identity talks to the external Identity Service: account creation,
// email/password sign-in, password reset, display-name updates, and issuance
// of the short-lived bearer tokens every authenticated Directory call needs.
package identity

import (
	"time"

	"github.com/devnest/cli/pkg/config"
	"github.com/devnest/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

var idClient *resty.Client

// Init initializes the HTTP client for the Identity Service
func Init() {
	idClient = resty.New()

	baseURL := config.GetString("identity.base_url")
	timeout := time.Duration(config.GetInt("identity.timeout")) * time.Second

	idClient.SetBaseURL(baseURL)
	idClient.SetTimeout(timeout)
	idClient.SetHeader("User-Agent", "DevNest-CLI/0.1.0")

	idClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("Identity request", "method", req.Method, "url", req.URL)
		return nil
	})
}

func getClient() *resty.Client {
	if idClient == nil {
		Init()
	}
	return idClient
}

// SetBaseURL points the client at a different Identity Service, used by
// tests to target a local fake.
func SetBaseURL(baseURL string) {
	getClient().SetBaseURL(baseURL)
}

// TokenResponse is the Identity Service's answer to sign-in, sign-up and
// token refresh: a short-lived id token plus the long-lived refresh token.
type TokenResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type profileRequest struct {
	DisplayName string `json:"displayName"`
}

// SignIn authenticates with email and password
func SignIn(email, password string) (*TokenResponse, error) {
	logger.Debug("Signing in", "email", email)
	return tokenCall("/v1/accounts/signin", signInRequest{Email: email, Password: password})
}

// SignUp registers a new account with email and password
func SignUp(email, password string) (*TokenResponse, error) {
	logger.Debug("Signing up", "email", email)
	return tokenCall("/v1/accounts/signup", signInRequest{Email: email, Password: password})
}

// Refresh exchanges a refresh token for a new short-lived id token
func Refresh(refreshToken string) (*TokenResponse, error) {
	logger.Debug("Refreshing id token")
	return tokenCall("/v1/token", refreshRequest{RefreshToken: refreshToken})
}

func tokenCall(path string, body interface{}) (*TokenResponse, error) {
	resp, err := getClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, parseIdentityError(resp)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// SendPasswordReset asks the Identity Service to email a reset link
func SendPasswordReset(email string) error {
	logger.Debug("Requesting password reset", "email", email)

	resp, err := getClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(resetRequest{Email: email}).
		Post("/v1/accounts/reset-password")

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return parseIdentityError(resp)
	}

	return nil
}

// UpdateDisplayName updates the profile display name for the token's owner
func UpdateDisplayName(idToken, displayName string) error {
	logger.Debug("Updating display name")

	resp, err := getClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+idToken).
		SetBody(profileRequest{DisplayName: displayName}).
		Post("/v1/accounts/profile")

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return parseIdentityError(resp)
	}

	return nil
}
