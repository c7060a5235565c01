package service

import (
	"fmt"

	"github.com/devnest/cli/pkg/client"
	"github.com/devnest/cli/pkg/credentials"
	cerrors "github.com/devnest/cli/pkg/errors"
	"github.com/devnest/cli/pkg/formatter"
	"github.com/devnest/cli/pkg/identity"
	"github.com/devnest/cli/pkg/logger"
	"github.com/devnest/cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles email/password sign-in against the Identity Service
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil {
		formatter.PrintWarning("Already logged in as %s", creds.Label())
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return cerrors.ValidationError("email", "cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return cerrors.ValidationError("password", "cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	tok, err := identity.SignIn(email, password)
	if err != nil {
		if identity.IsInvalidCredentials(err) {
			formatter.PrintError("Login failed: invalid email or password")
			return err
		}
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	creds, err = identity.Establish(tok)
	if err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(creds.Label()))
	return nil
}

// Register creates a new DevNest account. The password-match check blocks
// before any request is sent.
func (s *AuthService) Register() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return cerrors.ValidationError("email", "cannot be empty")
	}

	password, err := prompter.PromptPassword("Password (6 characters minimum): ")
	if err != nil {
		return err
	}
	if password == "" {
		return cerrors.ValidationError("password", "cannot be empty")
	}

	confirmPass, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirmPass {
		formatter.PrintError("Passwords do not match")
		return cerrors.ValidationError("password", "passwords do not match")
	}

	formatter.PrintInfo("Creating account...")
	tok, err := identity.SignUp(email, password)
	if err != nil {
		formatter.PrintError("Signup failed: %v", err)
		return err
	}

	creds, err := identity.Establish(tok)
	if err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account created!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(creds.Label()))
	return nil
}

// Logout drops the local session
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := identity.Clear(); err != nil {
		formatter.PrintError("Failed to delete credentials: %v", err)
		return err
	}

	client.ClearAuthToken()

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// RequestPasswordReset asks the Identity Service to send a reset email
func (s *AuthService) RequestPasswordReset() error {
	email, err := prompter.PromptString("Email address: ")
	if err != nil {
		return err
	}
	if email == "" {
		return cerrors.ValidationError("email", "cannot be empty")
	}

	if err := identity.SendPasswordReset(email); err != nil {
		formatter.PrintError("Failed to send reset email. Please check the email entered.")
		return err
	}

	formatter.PrintSuccess("✓ Password reset email sent! Please check your inbox.")
	return nil
}

// GetMe displays the current session
func (s *AuthService) GetMe() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil {
		formatter.PrintError("Not logged in. Please run 'devnest auth login'")
		return cerrors.AuthRequiredError()
	}

	fmt.Printf("\n")
	keyValues := map[string]interface{}{
		"User ID":       creds.UserID,
		"Email":         creds.Email,
		"Display Name":  creds.DisplayName,
		"Token Expires": creds.ExpiresAt.Format("2006-01-02 15:04:05"),
		"Token Valid":   creds.IsValid(),
	}
	formatter.PrintKeyValue(keyValues)

	return nil
}

// RefreshToken forces a refresh of the short-lived id token
func (s *AuthService) RefreshToken() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}

	if creds == nil {
		return cerrors.AuthRequiredError()
	}

	tok, err := identity.Refresh(creds.RefreshToken)
	if err != nil {
		formatter.PrintError("Failed to refresh token. Please login again.")
		return cerrors.SessionExpiredError()
	}

	if _, err := identity.Establish(&identity.TokenResponse{
		IDToken:      tok.IDToken,
		RefreshToken: firstNonEmpty(tok.RefreshToken, creds.RefreshToken),
		ExpiresIn:    tok.ExpiresIn,
		UserID:       firstNonEmpty(tok.UserID, creds.UserID),
		Email:        firstNonEmpty(tok.Email, creds.Email),
		DisplayName:  firstNonEmpty(tok.DisplayName, creds.DisplayName),
	}); err != nil {
		return err
	}

	formatter.PrintSuccess("✓ Token refreshed")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
