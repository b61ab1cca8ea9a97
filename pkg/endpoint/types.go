// Package endpoint defines the virtual endpoint model served by the engine.
//
// A Definition describes one user-created mock endpoint: the JSON template
// its responses are rendered from, plus the policies (auth, chaos, delay,
// scenarios, rate-limit tier) applied on every call.
package endpoint

import (
	"time"
)

// ChaosConfig controls random failure injection for an endpoint.
type ChaosConfig struct {
	// Enabled turns chaos injection on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Rate is the probability in [0, 1] that a request fails with a
	// synthetic 500. Values outside the range are clamped at evaluation.
	Rate float64 `json:"rate" yaml:"rate"`
}

// Scenario is a conditional response override. Scenarios are evaluated in
// definition order; the first one whose condition parameter matches the
// inbound query wins.
type Scenario struct {
	// ConditionParam is the query parameter name to inspect.
	ConditionParam string `json:"conditionParam" yaml:"conditionParam"`

	// ConditionValue must equal the parameter's value exactly (string compare).
	ConditionValue string `json:"conditionValue" yaml:"conditionValue"`

	// ResponseBody is the JSON body served on match. Empty serves {}.
	ResponseBody string `json:"responseBody" yaml:"responseBody"`

	// ResponseCode is the HTTP status served on match. It is stored as a
	// string (dashboard input); a non-numeric value is a configuration
	// error surfaced at request time.
	ResponseCode string `json:"responseCode" yaml:"responseCode"`
}

// Definition is a user-defined virtual endpoint. It is read once per
// request from the endpoint store and never mutated by the serving path.
type Definition struct {
	// ID uniquely identifies the endpoint and keys its rate-limit counter.
	ID string `json:"id" yaml:"id"`

	// Method is the verb the endpoint was created for. It is informational:
	// requests are served regardless of the inbound verb.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`

	// StatusCode is the HTTP status returned on the normal (non-scenario) path.
	StatusCode int `json:"statusCode" yaml:"statusCode"`

	// Template is the JSON-shaped response template. It may contain
	// {{query.name}}, {{auth.jwt}} and generator placeholders, and it need
	// not be valid JSON: render failure degrades into a diagnostic body.
	Template string `json:"template" yaml:"template"`

	// ProtectedToken, when set, requires callers to present
	// "Authorization: Bearer <token>".
	ProtectedToken string `json:"protectedToken,omitempty" yaml:"protectedToken,omitempty"`

	// Chaos configures random failure injection.
	Chaos *ChaosConfig `json:"chaosConfig,omitempty" yaml:"chaosConfig,omitempty"`

	// DelayMs adds artificial latency before rendering.
	DelayMs int `json:"delayMs,omitempty" yaml:"delayMs,omitempty"`

	// Scenarios are conditional response overrides, first match wins.
	Scenarios []Scenario `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`

	// CustomHeaders are merged into the response, taking precedence over
	// the CORS-permissive defaults.
	CustomHeaders map[string]string `json:"customHeaders,omitempty" yaml:"customHeaders,omitempty"`

	// OwnerIsPro reflects the owning account's subscription tier. Pro-owned
	// endpoints bypass free-tier admission control.
	OwnerIsPro bool `json:"ownerIsPro,omitempty" yaml:"ownerIsPro,omitempty"`

	// CreatedAt is when the endpoint was created.
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// Clone returns a deep copy of the definition. Store implementations hand
// out clones so callers can never mutate shared state.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	if d.Chaos != nil {
		chaos := *d.Chaos
		out.Chaos = &chaos
	}
	if d.Scenarios != nil {
		out.Scenarios = make([]Scenario, len(d.Scenarios))
		copy(out.Scenarios, d.Scenarios)
	}
	if d.CustomHeaders != nil {
		out.CustomHeaders = make(map[string]string, len(d.CustomHeaders))
		for k, v := range d.CustomHeaders {
			out.CustomHeaders[k] = v
		}
	}
	return &out
}
