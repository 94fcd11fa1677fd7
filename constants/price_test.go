package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLevel(t *testing.T) {
	tests := []struct {
		symbol string
		want   int
	}{
		{"$", 1},
		{"$$", 2},
		{"$$$", 3},
		{"$$$$", 4},
		{" $$ ", 2},
		{"", 0},
		{"$$$$$", 0},
		{"cheap", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceLevel(tt.symbol), "symbol %q", tt.symbol)
	}
}

func TestPriceSymbol(t *testing.T) {
	assert.Equal(t, "$$$", PriceSymbol(3))
	assert.Equal(t, "", PriceSymbol(0))
	assert.Equal(t, "", PriceSymbol(5))
}
