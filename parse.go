package scout

import (
	"regexp"
	"strings"
)

// numberedLine matches "<integer>. <content>" at the start of a line.
var numberedLine = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)

// ParseNumberedList returns the content of every numbered line in text, in
// order of appearance. Lines that are not list items are ignored, so prose a
// model adds around its list never becomes an entity. No matches is a valid
// empty result.
func ParseNumberedList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		m := numberedLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
