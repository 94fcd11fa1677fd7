package extraction

import (
	"fmt"
	"strings"
)

// FormatOpeningHours renders a structured weekly-hours list into the flat
// display string stored on a listing: day names abbreviated to three letters,
// entries joined with commas ("Mon: 9-5, Fri: 10-2"). A missing or non-array
// input yields an empty string.
func FormatOpeningHours(v any) string {
	entries, ok := v.([]any)
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		day, _ := m["day"].(string)
		hours, _ := m["hours"].(string)
		if day == "" || hours == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", abbreviateDay(day), hours))
	}
	return strings.Join(parts, ", ")
}

func abbreviateDay(day string) string {
	day = strings.TrimSpace(day)
	if len(day) > 3 {
		day = day[:3]
	}
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
}
