package template

import (
	mathrand "math/rand/v2"
	"net/url"

	"github.com/mocklet/mocklet/pkg/credential"
)

// Context is the request-scoped evaluation state for one render pass.
// It is created fresh per request and discarded afterwards; nothing in it
// outlives the request.
type Context struct {
	// Query holds the inbound query parameters (first value per key).
	Query map[string]string

	// Minter issues the credential for {{auth.jwt}} placeholders.
	Minter *credential.Minter

	// Rand, when set, seeds generator expansion for reproducible output.
	Rand *mathrand.Rand

	// Credential cache: minted at most once per render pass so that every
	// occurrence in one response carries the same token.
	token  string
	minted bool
}

// NewContext builds a render context from parsed query values.
func NewContext(query url.Values, minter *credential.Minter) *Context {
	q := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			q[key] = values[0]
		}
	}
	return &Context{Query: q, Minter: minter}
}

// credential returns the render-scoped minted token, minting on first use.
func (c *Context) credential() (string, error) {
	if c.minted {
		return c.token, nil
	}
	if c.Minter == nil {
		return "", credential.ErrNoSigningKey
	}
	tok, err := c.Minter.Mint()
	if err != nil {
		return "", err
	}
	c.token = tok
	c.minted = true
	return tok, nil
}
