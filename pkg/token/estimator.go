// Package token provides the lightweight token estimators used to budget
// content chunks. The estimates approximate LLM tokenizers rather than
// matching them; both strategies are linear over the input.
package token

import "strings"

// Estimator estimates how many tokens a piece of text costs.
type Estimator interface {
	Estimate(text string) int
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(text string) int

// Estimate calls fn(text).
func (fn EstimatorFunc) Estimate(text string) int {
	return fn(text)
}

// Words estimates one token per whitespace-separated word, minimum one for
// non-empty text.
var Words Estimator = EstimatorFunc(func(text string) int {
	count := len(strings.Fields(text))
	if count == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return count
})

// Runes estimates one token per four runes, minimum one for non-empty text.
var Runes Estimator = EstimatorFunc(func(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	count := len([]rune(trimmed)) / 4
	if count == 0 {
		return 1
	}
	return count
})
