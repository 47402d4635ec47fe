package client

import (
	"context"
	"net/http"
	"net/url"

	"financebook/internal/models"
)

// Login exchanges credentials for a bearer token. The body is
// form-encoded, as OAuth2 password-flow servers expect.
func (c *Client) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := c.send(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/login",
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	var token models.TokenResponse
	if err := decode(resp, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
