package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/controldoc/web/internal/domain"
)

const (
	opLogin   = "login"
	loginPath = "/auth/login"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for an access token. A rejected login is
// reported as KindUpstreamUnavailable with the API's "detail" message, when
// it sent one.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	endpoint, upErr := c.endpoint(ctx, opLogin, loginPath)
	if upErr != nil {
		return "", c.fail(upErr)
	}

	payload, err := json.Marshal(domain.Credentials{Email: email, Password: password})
	if err != nil {
		return "", c.fail(&Error{Kind: KindNetworkFailure, Op: opLogin, Err: fmt.Errorf("failed to marshal login payload: %w", err)})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", c.fail(&Error{Kind: KindNetworkFailure, Op: opLogin, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.send(opLogin, req)
	if err != nil {
		return "", err
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", c.fail(&Error{Kind: KindMalformedResponse, Op: opLogin, Status: http.StatusOK, Err: err})
	}
	if lr.AccessToken == "" {
		return "", c.fail(&Error{Kind: KindMalformedResponse, Op: opLogin, Status: http.StatusOK, Err: errors.New("response has no access_token")})
	}

	c.succeed(opLogin)
	return lr.AccessToken, nil
}
