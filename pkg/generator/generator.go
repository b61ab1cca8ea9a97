// Package generator produces fake-but-plausible values for the template
// engine's generator tokens.
//
// The token set is fixed and enumerable; unknown names fail with
// ErrUnknownToken rather than silently emitting empty output. Every call
// produces a freshly random value: two occurrences of the same token in one
// template expand independently.
package generator

import (
	"errors"
	"fmt"
	mathrand "math/rand/v2"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// ErrUnknownToken is returned for generator names outside the fixed set.
var ErrUnknownToken = errors.New("unknown generator token")

// Generate expands a single generator token into a fresh random value.
// rng may be nil, in which case the shared process-wide source is used;
// tests pass a seeded source for reproducible output.
func Generate(name string, rng *mathrand.Rand) (string, error) {
	switch name {
	case "uuid":
		return uuid.New().String(), nil
	case "boolean":
		if intN(rng, 2) == 0 {
			return "false", nil
		}
		return "true", nil
	case "int":
		return strconv.Itoa(intN(rng, 10000)), nil
	case "firstName":
		return pick(rng, firstNames), nil
	case "lastName":
		return pick(rng, lastNames), nil
	case "fullName":
		return pick(rng, firstNames) + " " + pick(rng, lastNames), nil
	case "username":
		return pick(rng, usernameWords) + strconv.Itoa(intN(rng, 1000)), nil
	case "email":
		return pick(rng, usernameWords) + strconv.Itoa(intN(rng, 1000)) + "@" + pick(rng, emailDomains), nil
	case "phone":
		return fmt.Sprintf("+1-%03d-%03d-%04d", intN(rng, 900)+100, intN(rng, 900)+100, intN(rng, 10000)), nil
	case "company":
		return pick(rng, companies), nil
	case "jobTitle":
		return pick(rng, jobLevels) + " " + pick(rng, jobRoles), nil
	case "street":
		return strconv.Itoa(intN(rng, 9999)+1) + " " + pick(rng, streets), nil
	case "city":
		return pick(rng, cities), nil
	case "country":
		return pick(rng, countries), nil
	case "word":
		return pick(rng, words), nil
	case "sentence":
		return pick(rng, sentences), nil
	case "price":
		return fmt.Sprintf("%d.%02d", intN(rng, 999)+1, intN(rng, 100)), nil
	case "color":
		return pick(rng, colors), nil
	case "ipv4":
		return fmt.Sprintf("%d.%d.%d.%d", intN(rng, 223)+1, intN(rng, 256), intN(rng, 256), intN(rng, 254)+1), nil
	case "userAgent":
		return pick(rng, userAgents), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownToken, name)
	}
}

// tokenNames is the canonical token set, kept in sync with Generate.
var tokenNames = []string{
	"uuid", "boolean", "int", "firstName", "lastName", "fullName",
	"username", "email", "phone", "company", "jobTitle", "street",
	"city", "country", "word", "sentence", "price", "color", "ipv4",
	"userAgent",
}

// Tokens returns the sorted set of supported generator token names.
func Tokens() []string {
	out := make([]string, len(tokenNames))
	copy(out, tokenNames)
	sort.Strings(out)
	return out
}

func intN(rng *mathrand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

func pick(rng *mathrand.Rand, items []string) string {
	return items[intN(rng, len(items))]
}
