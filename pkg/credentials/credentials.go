package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/devnest/cli/pkg/config"
)

// Credentials is the persisted Identity Service session. The IDToken is
// short-lived; callers must go through identity.FreshToken rather than
// reading it directly before a Directory call.
type Credentials struct {
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Not logged in yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	return os.Remove(path)
}

// IsExpired checks if the id token is expired
func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are usable without a refresh
func (c *Credentials) IsValid() bool {
	return c.IDToken != "" && !c.IsExpired()
}

// Label returns the best display label for the session owner
func (c *Credentials) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Email
}
