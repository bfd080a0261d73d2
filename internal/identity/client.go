package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	dErrors "salaire/pkg/domain-errors"
)

const clientTimeout = 15 * time.Second

// Client talks to the hosted identity service over HTTP.
type Client struct {
	baseURL   string
	jwtSecret string
	http      *http.Client
}

// NewClient constructs an identity client. jwtSecret is the HS256 key the
// identity service signs access tokens with; validating locally avoids a
// network round-trip per confirmation.
func NewClient(baseURL, jwtSecret string) *Client {
	return &Client{
		baseURL:   baseURL,
		jwtSecret: jwtSecret,
		http:      &http.Client{Timeout: clientTimeout},
	}
}

type otpRequest struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to"`
}

// RequestVerification asks the identity service to mail a one-time link.
func (c *Client) RequestVerification(ctx context.Context, email, returnURL string) error {
	body, err := json.Marshal(otpRequest{Email: email, RedirectTo: returnURL})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "encode verification request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/otp", bytes.NewReader(body))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build verification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "request verification link")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return dErrors.New(dErrors.CodeInternal,
			fmt.Sprintf("identity service rejected verification request (%d): %s", resp.StatusCode, detail))
	}
	return nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// EstablishSession resolves the verified identity from the token pair.
// The access token is validated locally; when it is expired or malformed the
// refresh token gets one chance at a server-side exchange before the pair is
// rejected.
func (c *Client) EstablishSession(ctx context.Context, accessToken, refreshToken string) (Identity, error) {
	if accessToken == "" && refreshToken == "" {
		return Identity{}, dErrors.New(dErrors.CodeUnauthorized, "no verification tokens supplied")
	}

	if accessToken != "" {
		if id, err := parseAccessToken(accessToken, c.jwtSecret); err == nil {
			return id, nil
		}
	}

	if refreshToken == "" {
		return Identity{}, dErrors.New(dErrors.CodeUnauthorized, "access token rejected and no refresh token supplied")
	}

	refreshed, err := c.refresh(ctx, refreshToken)
	if err != nil {
		return Identity{}, err
	}
	id, err := parseAccessToken(refreshed, c.jwtSecret)
	if err != nil {
		return Identity{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "refreshed access token rejected")
	}
	return id, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "encode token refresh")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token?grant_type=refresh_token", bytes.NewReader(body))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "build token refresh")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "token refresh failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", dErrors.New(dErrors.CodeUnauthorized,
			fmt.Sprintf("identity service rejected token pair (%d): %s", resp.StatusCode, detail))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "decode token response")
	}
	if tr.AccessToken == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "token response carries no access token")
	}
	return tr.AccessToken, nil
}
