package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorMapping(t *testing.T) {
	assert.Equal(t, Black, Club.Color())
	assert.Equal(t, Black, Spade.Color())
	assert.Equal(t, Red, Diamond.Color())
	assert.Equal(t, Red, Heart.Color())
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, c := range StandardDeck() {
		s := c.String()
		got, err := ParseCard(s)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCardSyntax(t *testing.T) {
	cases := []struct {
		in   string
		want Card
	}{
		{"1D", Card{Rank: 1, Suit: Diamond}},
		{"13H", Card{Rank: 13, Suit: Heart}},
		{"10S", Card{Rank: 10, Suit: Spade}},
	}
	for _, tc := range cases {
		got, err := ParseCard(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCardRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "D", "14D", "0D", "1X", "XD"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, "expected error parsing %q", bad)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, c := range StandardDeck() {
		got, ok := DecodeCard(c.Encode())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestDecodeCardRejectsInvalid(t *testing.T) {
	_, ok := DecodeCard(0x00) // rank 0 is invalid
	assert.False(t, ok)
}

func TestStandardDeckIsComplete(t *testing.T) {
	deck := StandardDeck()
	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}
