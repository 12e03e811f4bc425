package wordclock

import "math/rand"

// Coin supplies the single random bit consumed per render.
// Implementations are only ever called from one goroutine at a time.
type Coin interface {
	Flip() bool
}

// CoinFunc adapts a plain function to Coin.
type CoinFunc func() bool

func (f CoinFunc) Flip() bool { return f() }

// Fixed is a Coin that always lands the same way.
type Fixed bool

func (f Fixed) Flip() bool { return bool(f) }

// RandCoin is a fair Coin backed by math/rand.
type RandCoin struct {
	r *rand.Rand
}

// NewRandCoin creates a fair coin seeded with seed.
func NewRandCoin(seed int64) *RandCoin {
	return &RandCoin{r: rand.New(rand.NewSource(seed))}
}

func (c *RandCoin) Flip() bool {
	return c.r.Intn(2) == 0
}

// ShowLeadIn decides whether the lead-in phrase is lit. It always draws
// exactly one bit from coin. The first five minutes of each half hour
// force the lead-in on.
func ShowLeadIn(minute int, coin Coin) bool {
	r := coin.Flip()
	return r || minute%30 < 5
}
