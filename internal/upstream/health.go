package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	opHealth   = "health"
	healthPath = "/health"
)

// Health checks that the API is reachable and reports {"status": "ok"}.
func (c *Client) Health(ctx context.Context) error {
	endpoint, upErr := c.endpoint(ctx, opHealth, healthPath)
	if upErr != nil {
		return c.fail(upErr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fail(&Error{Kind: KindNetworkFailure, Op: opHealth, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.send(opHealth, req)
	if err != nil {
		return err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return c.fail(&Error{Kind: KindMalformedResponse, Op: opHealth, Status: http.StatusOK, Err: err})
	}
	if status.Status != "ok" {
		return c.fail(&Error{Kind: KindMalformedResponse, Op: opHealth, Status: http.StatusOK, Err: fmt.Errorf("unexpected status %q", status.Status)})
	}

	c.succeed(opHealth)
	return nil
}
