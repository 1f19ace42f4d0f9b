package pipeline

import (
	"context"

	"github.com/fwojciec/scout"
)

// maxTruncateRounds bounds how often TruncateToTokens recounts.
const maxTruncateRounds = 4

// TruncateToTokens shortens text from the end until counter reports at
// most limit tokens. Text already within the limit is returned unchanged.
// Cuts fall on rune boundaries.
func TruncateToTokens(ctx context.Context, counter scout.TokenCounter, text string, limit int) (string, error) {
	if limit <= 0 {
		return text, nil
	}

	n, err := counter.CountTokens(ctx, text)
	if err != nil {
		return text, err
	}

	runes := []rune(text)
	for round := 0; n > limit && round < maxTruncateRounds; round++ {
		// Aim slightly under the limit so one round is usually enough.
		keep := int(float64(len(runes)) * float64(limit) / float64(n) * 0.95)
		if keep >= len(runes) {
			keep = len(runes) - 1
		}
		if keep <= 0 {
			return "", nil
		}
		runes = runes[:keep]

		n, err = counter.CountTokens(ctx, string(runes))
		if err != nil {
			return text, err
		}
	}

	return string(runes), nil
}
