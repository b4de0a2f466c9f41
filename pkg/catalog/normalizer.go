package catalog

import (
	"math"
	"strings"
)

type synonymGroup struct {
	tag      string
	keywords []string
}

// Order is significant: tags are not mutually exclusive substrings, so
// the first group containing the label wins.
var synonymGroups = []synonymGroup{
	{tag: "phone", keywords: []string{"phone", "cell", "mobile"}},
	{tag: "bottle", keywords: []string{"bottle", "cup", "glass", "jar"}},
	{tag: "tv", keywords: []string{"tv", "monitor", "screen", "laptop", "computer"}},
	{tag: "ac", keywords: []string{"microwave", "oven", "remote", "refrigerator", "heater"}},
	{tag: "mic", keywords: []string{"mic", "microphone", "audio", "speaker"}},
	{tag: "fan", keywords: []string{"fan", "ceiling"}},
	{tag: "light", keywords: []string{"light", "bulb", "lamp"}},
}

// Normalize maps a free-text model label to one of the fixed category
// tags. Unmatched labels fall back to "other".
func Normalize(label string) string {
	label = strings.ToLower(label)

	for _, group := range synonymGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(label, keyword) {
				return group.tag
			}
		}
	}

	return "other"
}

// Percent converts a 0..1 confidence score to a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}
