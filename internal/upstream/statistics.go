package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/controldoc/web/internal/domain"
)

const (
	opStatistics   = "statistics"
	statisticsPath = "/estadisticas"
)

// Wire names for each count, most specific first. The API speaks snake_case;
// camelCase and English aliases are accepted too.
var (
	validKeys    = []string{"vigentes", "valid"}
	expiringKeys = []string{"por_vencer", "porVencer", "expiring"}
	expiredKeys  = []string{"vencidos", "expired"}
)

// FetchStatistics retrieves the current document counts. The bearer token is
// sent only when token is non-empty. Responses are never cached.
//
// On a MalformedResponse error the returned snapshot is zero-valued; on any
// other error it must be ignored.
func (c *Client) FetchStatistics(ctx context.Context, token string) (domain.Statistics, error) {
	endpoint, upErr := c.endpoint(ctx, opStatistics, statisticsPath)
	if upErr != nil {
		return domain.Statistics{}, c.fail(upErr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Statistics{}, c.fail(&Error{Kind: KindNetworkFailure, Op: opStatistics, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	body, err := c.send(opStatistics, req)
	if err != nil {
		return domain.Statistics{}, err
	}

	stats, err := ParseStatistics(body)
	if err != nil {
		return stats, c.fail(&Error{Kind: KindMalformedResponse, Op: opStatistics, Status: http.StatusOK, Err: err})
	}

	c.succeed(opStatistics)
	return stats, nil
}

// ParseStatistics decodes a statistics body. It is total: the snapshot always
// holds three non-negative counts, with any missing, non-numeric or negative
// field read as zero and fractions truncated. An error is returned only when
// body is not a JSON object, alongside a zero snapshot.
func ParseStatistics(body []byte) (domain.Statistics, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.Statistics{}, fmt.Errorf("decode statistics: %w", err)
	}
	if fields == nil {
		return domain.Statistics{}, fmt.Errorf("decode statistics: body is not an object")
	}

	return domain.Statistics{
		Valid:    count(fields, validKeys),
		Expiring: count(fields, expiringKeys),
		Expired:  count(fields, expiredKeys),
	}, nil
}

// count returns the first numeric value among keys, clamped to [0, MaxInt].
func count(fields map[string]json.RawMessage, keys []string) int {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		switch {
		case math.IsNaN(n) || n <= 0:
			return 0
		case n >= math.MaxInt:
			return math.MaxInt
		default:
			return int(n)
		}
	}
	return 0
}
