package docanalyzer

import "regexp"

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), // MM/DD/YYYY
	regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`), // YYYY-MM-DD
	regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
}

// ExtractDates collects every date-like substring matched by the three
// patterns above. Matches are returned verbatim, deduplicated, with no
// parsing to a canonical date type and no significant order.
func ExtractDates(text string) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)

	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if !seen[match] {
				seen[match] = true
				dates = append(dates, match)
			}
		}
	}

	return dates
}
