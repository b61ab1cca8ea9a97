// Package template implements the response template grammar: literal JSON
// text mixed with {{query.name}}, {{auth.jwt}} and generator placeholders.
//
// Templates are scanned once into tagged segments, then expanded in three
// ordered passes (query, credential, generator) and parsed as JSON. A
// template that fails to parse after substitution degrades into a
// diagnostic body rather than an error response.
package template
