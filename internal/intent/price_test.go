package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		token  string
		want   float64
		wantOK bool
	}{
		{"500", 500, true},
		{"50k", 50000, true},
		{"1,500", 1500, true},
		{"1,5k", 15000, true},
		{"99.99", 99.99, true},
		{"2.5k", 2.5, true},
		{"0", 0, true},
		{"", 0, false},
		{",", 0, false},
		{"$500", 0, false},
		{"cheap", 0, false},
		{"nan", 0, false},
		{"inf", 0, false},
		{"-20", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := parseAmount(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("123"))
	assert.True(t, isNumeric("50k"))
	assert.True(t, isNumeric("1,200"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("shoes"))
	assert.False(t, isNumeric("4k-tv"))
}

func TestVocabulary_Default(t *testing.T) {
	v := DefaultVocabulary()
	assert.Same(t, v, DefaultVocabulary())

	name, ok := v.Category("headphones")
	assert.True(t, ok)
	assert.Equal(t, "Electronics", name)

	name, ok = v.Category("book")
	assert.True(t, ok)
	assert.Equal(t, "Book", name)

	_, ok = v.Category("shoes")
	assert.False(t, ok)

	assert.True(t, v.IsStopword("i'm"))
	assert.True(t, v.IsPriceWord("rupees"))
	assert.False(t, v.IsPriceWord("laptop"))
}
