package docanalyzer

import (
	"regexp"
	"strconv"
	"strings"
)

// metricFamily is one named financial quantity with an ordered list of
// alternative patterns for locating it. The first pattern that yields a
// parseable match wins; later patterns are never consulted after a hit.
type metricFamily struct {
	name     string
	patterns []*regexp.Regexp
	scaled   bool // magnitude suffix (million/billion/M/B) supported
}

// Each pattern captures the numeric portion in group 1 and, for scaled
// families, an optional magnitude suffix in group 2.
var metricFamilies = []metricFamily{
	{
		name: "revenue",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)revenue[:\s]+\$?([0-9,]+\.?[0-9]*)\s*(million|billion|M|B)?`),
			regexp.MustCompile(`(?i)sales[:\s]+\$?([0-9,]+\.?[0-9]*)\s*(million|billion|M|B)?`),
			regexp.MustCompile(`(?i)total revenue[:\s]+\$?([0-9,]+\.?[0-9]*)\s*(million|billion|M|B)?`),
		},
		scaled: true,
	},
	{
		name: "eps",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)earnings per share[:\s]+\$?([0-9]+\.?[0-9]*)`),
			regexp.MustCompile(`(?i)EPS[:\s]+\$?([0-9]+\.?[0-9]*)`),
			regexp.MustCompile(`(?i)diluted EPS[:\s]+\$?([0-9]+\.?[0-9]*)`),
		},
	},
	{
		name: "net_income",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)net income[:\s]+\$?([0-9,]+\.?[0-9]*)\s*(million|billion|M|B)?`),
			regexp.MustCompile(`(?i)net earnings[:\s]+\$?([0-9,]+\.?[0-9]*)\s*(million|billion|M|B)?`),
		},
		scaled: true,
	},
}

// ExtractMetrics scans text for revenue, EPS and net income figures.
//
// For each family the patterns are tried in order and only the first match
// of the first matching pattern is used. Values are normalized to absolute
// units: a million/M suffix multiplies by 1e6, billion/B by 1e9. EPS is
// stored unscaled. A family that produces no parseable match contributes
// no key at all.
func ExtractMetrics(text string) MetricSet {
	metrics := MetricSet{}

	for _, family := range metricFamilies {
		for _, pattern := range family.patterns {
			m := pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			raw := strings.ReplaceAll(m[1], ",", "")
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				// Non-numeric text slipped through the character class;
				// fall through to the next pattern in the family.
				continue
			}

			if family.scaled && len(m) > 2 {
				switch strings.ToLower(m[2]) {
				case "billion", "b":
					value *= 1e9
				case "million", "m":
					value *= 1e6
				}
			}

			metrics[family.name] = value
			break
		}
	}

	return metrics
}
