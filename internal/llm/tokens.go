/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Token estimation for prompt size logging.
package llm

// EstimateTokens provides a heuristic-based token count estimate for text.
// Uses the common approximation of ~4 characters per token.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + 3) / 4
}
