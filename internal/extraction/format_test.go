package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOpeningHours(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name: "typical week subset",
			input: []any{
				map[string]any{"day": "monday", "hours": "9-5"},
				map[string]any{"day": "friday", "hours": "10-2"},
			},
			want: "Mon: 9-5, Fri: 10-2",
		},
		{
			name: "mixed-case day names",
			input: []any{
				map[string]any{"day": "SATURDAY", "hours": "11 AM - 11 PM"},
			},
			want: "Sat: 11 AM - 11 PM",
		},
		{
			name: "entries without day or hours skipped",
			input: []any{
				map[string]any{"day": "sunday"},
				map[string]any{"hours": "9-5"},
				map[string]any{"day": "tuesday", "hours": "9-5"},
			},
			want: "Tue: 9-5",
		},
		{name: "nil input", input: nil, want: ""},
		{name: "non-array input", input: "monday 9-5", want: ""},
		{name: "object input", input: map[string]any{"day": "monday"}, want: ""},
		{name: "empty array", input: []any{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOpeningHours(tt.input))
		})
	}
}
