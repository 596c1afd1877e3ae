package owner

import (
	"context"
	"net/http"
)

// RegisterRequest is the new-owner signup payload.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
}

type meResponse struct {
	User *UserProfile `json:"user"`
}

// Login exchanges credentials for a bearer token. Credential checking and
// rate limiting are entirely the backend's concern.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, c.ownerURL+"/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates an owner account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, c.ownerURL+"/register", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me returns the authoritative profile for the token's owner.
func (c *Client) Me(ctx context.Context, token string) (*UserProfile, error) {
	var resp meResponse
	if err := c.doJSON(ctx, http.MethodGet, c.ownerURL+"/me", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Status: http.StatusBadGateway, Message: "me response missing user"}
	}
	return resp.User, nil
}

// ValidateToken asks the backend whether the token is still good, without
// fetching the profile.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodGet, c.ownerURL+"/validate-token", token, nil, nil)
}

// Logout notifies the backend that the session ended.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, c.ownerURL+"/logout", token, nil, nil)
}

// UpdateName changes the owner's display name.
func (c *Client) UpdateName(ctx context.Context, token, firstName, lastName string) error {
	body := map[string]string{"first_name": firstName, "last_name": lastName}
	return c.doJSON(ctx, http.MethodPatch, c.guestURL+"/update-name", token, body, nil)
}

// UpdateEmail changes the login email.
func (c *Client) UpdateEmail(ctx context.Context, token, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPatch, c.guestURL+"/update-email", token, body, nil)
}

// UpdatePhone sets the full phone number, calling code included.
func (c *Client) UpdatePhone(ctx context.Context, token, phone string) error {
	body := map[string]string{"phone": phone}
	return c.doJSON(ctx, http.MethodPatch, c.guestURL+"/update-phone", token, body, nil)
}

// UpdatePassword submits a password change. Strength checking happens
// before this call; hashing happens after it, server side.
func (c *Client) UpdatePassword(ctx context.Context, token, password, confirm string) error {
	body := map[string]string{"password": password, "confirmPassword": confirm}
	return c.doJSON(ctx, http.MethodPatch, c.guestURL+"/update-password", token, body, nil)
}
