package identity

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// IdentityError is an error response from the Identity Service
type IdentityError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity service: [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsInvalidCredentials reports whether err means a bad email/password pair
func IsInvalidCredentials(err error) bool {
	if idErr, ok := err.(*IdentityError); ok {
		return idErr.StatusCode == 400 || idErr.StatusCode == 401
	}
	return false
}

func parseIdentityError(resp *resty.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	idErr := &IdentityError{
		Code:       "identity_error",
		Message:    string(resp.Body()),
		StatusCode: resp.StatusCode(),
	}

	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Code != "" {
			idErr.Code = body.Code
		}
		if body.Message != "" {
			idErr.Message = body.Message
		} else if body.Error != "" {
			idErr.Message = body.Error
		}
	}

	return idErr
}
