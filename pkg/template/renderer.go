package template

import (
	"encoding/json"
	"strings"

	"github.com/mocklet/mocklet/pkg/generator"
)

// parseErrorMessage is the documented diagnostic for templates that are
// not valid JSON after substitution. Callers inspect the accompanying raw
// string to debug their templates, so the shape is load-bearing.
const parseErrorMessage = "JSON Parse Error"

// Result is the outcome of one render pass.
//
// OK=false means the render degraded: Value carries a diagnostic body
// ({"error": ..., "raw": ...}) that is still served with the endpoint's
// configured status. A broken template never turns into a 5xx.
type Result struct {
	Value any
	OK    bool
	Err   error
}

// Render expands a template against the context and parses the outcome as
// JSON. Substitution order is fixed: query parameters first (so a query
// value can never be re-read as a placeholder), then the one-shot
// credential, then generator tokens with independent randomness per
// occurrence.
func Render(tpl string, ctx *Context) Result {
	segs := Scan(tpl)

	// Each slot starts as its source text; passes overwrite slots in
	// place, so joining at any point yields "substituted so far, remaining
	// placeholders intact" — exactly the raw string diagnostics need.
	resolved := make([]string, len(segs))
	for i, s := range segs {
		resolved[i] = s.Text
	}

	// Pass 1: query parameters. Values are substituted verbatim, not
	// JSON-escaped; a value that breaks the JSON is allowed to surface as
	// a parse failure below. An absent parameter leaves its placeholder.
	for i, s := range segs {
		if s.Kind != KindQuery {
			continue
		}
		if v, ok := ctx.Query[s.Name]; ok {
			resolved[i] = v
		}
	}

	// Pass 2: credential, minted once and reused for every occurrence.
	for i, s := range segs {
		if s.Kind != KindCredential {
			continue
		}
		tok, err := ctx.credential()
		if err != nil {
			return degraded(err.Error(), strings.Join(resolved, ""), err)
		}
		resolved[i] = tok
	}

	// Pass 3: generator tokens, a fresh draw per occurrence.
	for i, s := range segs {
		if s.Kind != KindGenerator {
			continue
		}
		v, err := generator.Generate(s.Name, ctx.Rand)
		if err != nil {
			return degraded(err.Error(), strings.Join(resolved, ""), err)
		}
		resolved[i] = v
	}

	substituted := strings.Join(resolved, "")

	var value any
	if err := json.Unmarshal([]byte(substituted), &value); err != nil {
		return degraded(parseErrorMessage, substituted, err)
	}
	return Result{Value: value, OK: true}
}

func degraded(msg, raw string, err error) Result {
	return Result{
		Value: map[string]any{"error": msg, "raw": raw},
		OK:    false,
		Err:   err,
	}
}
