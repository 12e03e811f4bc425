package wordclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowLeadIn(t *testing.T) {
	for minute := 0; minute < 60; minute++ {
		forced := minute%30 < 5
		assert.True(t, ShowLeadIn(minute, Fixed(true)), "minute %d heads", minute)
		assert.Equal(t, forced, ShowLeadIn(minute, Fixed(false)), "minute %d tails", minute)
	}
}

func TestShowLeadIn_DrawsOnce(t *testing.T) {
	// forced minutes still consume their bit
	for _, minute := range []int{0, 4, 17, 30, 34, 59} {
		draws := 0
		coin := CoinFunc(func() bool {
			draws++
			return false
		})
		ShowLeadIn(minute, coin)
		assert.Equal(t, 1, draws, "minute %d", minute)
	}
}

func TestRandCoin(t *testing.T) {
	a := NewRandCoin(42)
	b := NewRandCoin(42)

	heads := 0
	for i := 0; i < 1000; i++ {
		x := a.Flip()
		assert.Equal(t, x, b.Flip(), "same seed should give same draws")
		if x {
			heads++
		}
	}
	assert.Greater(t, heads, 0)
	assert.Less(t, heads, 1000)
}
