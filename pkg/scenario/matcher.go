// Package scenario evaluates conditional response overrides against the
// inbound query string.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mocklet/mocklet/pkg/endpoint"
)

// ErrBadResponseCode marks a matched scenario whose configured status code
// is not numeric. Unlike a malformed body there is no sensible fallback
// for a status code, so this is terminal for the request.
var ErrBadResponseCode = errors.New("scenario response code is not numeric")

// Selection is the outcome of a successful scenario match.
type Selection struct {
	// Body is the parsed response body, or the soft-failure diagnostic
	// shape when the configured body is not valid JSON.
	Body any

	// Status is the parsed response code.
	Status int

	// BodyOK is false when Body carries the diagnostic fallback.
	BodyOK bool
}

// Match walks scenarios in definition order and selects the first whose
// condition parameter equals its condition value in the query (exact
// string equality). An absent parameter never matches, even against an
// empty condition value. Returns nil when nothing matches. Remaining
// scenarios after the first match are never evaluated.
func Match(scenarios []endpoint.Scenario, query map[string]string) (*Selection, error) {
	for _, s := range scenarios {
		v, ok := query[s.ConditionParam]
		if !ok || v != s.ConditionValue {
			continue
		}

		status, err := strconv.Atoi(strings.TrimSpace(s.ResponseCode))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadResponseCode, s.ResponseCode)
		}

		raw := s.ResponseBody
		if raw == "" {
			raw = "{}"
		}

		var body any
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			return &Selection{
				Body:   map[string]any{"error": "JSON Parse Error", "raw": raw},
				Status: status,
			}, nil
		}
		return &Selection{Body: body, Status: status, BodyOK: true}, nil
	}
	return nil, nil
}
