package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/scout"
)

const promptHeader = `The article discusses various topics such as tourist attractions, restaurants, nature spots, or other points of interest in terms of 'the best of ...'.
Your task is to identify mentioned objects and provide a clear numbered list. I don't want from you to analyze the article and its strengths etc. Just identify and provide the objects.
Additional guidelines:
- Each item should include the full location context (city, country)
- Format: Name, City, Country
- Do not include any additional information or commentary.
Example:
Article: 'Top 10 Restaurants in Warsaw'
Output:
1. Restaurant A, Warsaw, Poland
2. Restaurant B, Warsaw, Poland
...

Article to use:
`

// BuildPrompt returns the extraction prompt for pageText. The page text is
// appended verbatim as the final segment.
func BuildPrompt(pageText string) string {
	return promptHeader + pageText
}

// EntityExtractor asks a language model for the points of interest in an
// article and parses its numbered-list answer.
type EntityExtractor struct {
	completer scout.Completer
}

// NewEntityExtractor creates a new EntityExtractor.
func NewEntityExtractor(completer scout.Completer) *EntityExtractor {
	return &EntityExtractor{completer: completer}
}

// Extract returns the "Name, City, Country" entities mentioned in pageText.
// A model error or an empty answer is EUPSTREAM. An answer without a numbered
// list yields no entities and no error.
func (e *EntityExtractor) Extract(ctx context.Context, pageText string) ([]string, error) {
	output, err := e.completer.Complete(ctx, BuildPrompt(pageText))
	if err != nil {
		if scout.ErrorCode(err) == scout.EUPSTREAM {
			return nil, err
		}
		return nil, scout.Errorf(scout.EUPSTREAM, "language model: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		return nil, scout.Errorf(scout.EUPSTREAM, "language model returned an empty response")
	}
	return scout.ParseNumberedList(output), nil
}
