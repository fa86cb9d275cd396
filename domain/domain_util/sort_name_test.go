package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Beatles", "beatles"},
		{"A Perfect Circle", "perfect circle"},
		{"An Horse", "horse"},
		{"Beyoncé", "beyonce"},
		{"  Mötley Crüe  ", "motley crue"},
		{"Anathema", "anathema"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OrderName(tc.in), "input %q", tc.in)
	}
}

func TestPinyinKeyPassesLatinThrough(t *testing.T) {
	assert.Equal(t, "night drive", PinyinKey("Night Drive"))
}

func TestPinyinKeyTransliteratesCJK(t *testing.T) {
	key := PinyinKey("月亮")
	assert.NotEmpty(t, key)
	// The key must contain only romanized output for CJK input.
	for _, r := range key {
		assert.Less(t, r, rune(0x2E80), "rune %q not romanized", r)
	}
}
