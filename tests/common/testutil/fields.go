//go:build unit || e2e

// Package testutil holds small helpers shared by handler and journey tests.
package testutil

// Mutation tweaks a request body map before it is sent.
type Mutation func(body map[string]any)

// Set overwrites one field of the body.
func Set(key string, value any) Mutation {
	return func(body map[string]any) {
		body[key] = value
	}
}

// Unset removes one field, for exercising required-field validation.
func Unset(key string) Mutation {
	return func(body map[string]any) {
		delete(body, key)
	}
}
