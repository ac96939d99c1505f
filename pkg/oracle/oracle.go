// Package oracle defines the Word Oracle capability the CSP engine consults
// when a slot's domain empties during search, plus the caching decorators
// that sit in front of a real oracle implementation.
package oracle

import "context"

// Oracle answers pattern queries: given a slot pattern ("." for an unfilled
// cell, an uppercase letter for a fixed one) and a count, it returns up to
// count candidate words of the pattern's length that are not in used. An
// error is treated by callers as an empty result; Oracle implementations
// should not block past ctx's deadline.
type Oracle interface {
	Request(ctx context.Context, pattern string, count int, used map[string]bool) ([]string, error)
}
