package wordclock

import (
	"fmt"
	"strings"

	"wordclock/internal/grid"
)

// Phrase is the composed reading of one render: the words to light, in
// reading order, plus the precision remainder.
type Phrase struct {
	Variant Variant
	Segment Segment
	LeadIn  bool
	Words   []Word
}

// Light turns on the phrase's cells. It never turns a cell off.
func (p Phrase) Light(g *grid.Grid) {
	for _, w := range p.Words {
		g.Light(w.Span)
	}
	g.LightRun(grid.PrecisionRow, p.Segment.Remainder)
}

// String renders the phrase as text, e.g. "es ist viertel nach sieben + 2 min".
func (p Phrase) String() string {
	texts := make([]string, len(p.Words))
	for i, w := range p.Words {
		texts[i] = w.Text
	}
	return fmt.Sprintf("%s + %d min", strings.Join(texts, " "), p.Segment.Remainder)
}

// Renderer encodes wall-clock times onto a grid using one catalog.
// It keeps no state between calls apart from the coin it draws from.
type Renderer struct {
	catalog *Catalog
	coin    Coin
}

// NewRenderer creates a renderer for variant drawing lead-in bits from coin.
func NewRenderer(variant Variant, coin Coin) (*Renderer, error) {
	c, ok := catalogs[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(variant))
	}
	return &Renderer{catalog: c, coin: coin}, nil
}

// Variant returns the variant the renderer draws.
func (r *Renderer) Variant() Variant {
	return r.catalog.Variant
}

// Catalog returns a copy of the renderer's phrase table.
func (r *Renderer) Catalog() Catalog {
	return r.catalog.clone()
}

// Compose builds the phrase for hour and minute with the lead-in decision
// already made. It is deterministic.
func (r *Renderer) Compose(hour, minute int, leadIn bool) Phrase {
	c := r.catalog
	seg := SegmentOf(hour, minute)

	var words []Word
	if leadIn {
		words = append(words, c.LeadIn...)
	}
	words = append(words, c.Minutes[seg.Bucket]...)
	words = append(words, c.HourWord(seg))
	if seg.Bucket == OnHour && c.OClock != nil {
		words = append(words, *c.OClock)
	}

	return Phrase{
		Variant: c.Variant,
		Segment: seg,
		LeadIn:  leadIn,
		Words:   words,
	}
}

// Render clears g and lights the phrase for hour and minute, drawing one
// bit from the coin for the lead-in. The grid is not retained.
func (r *Renderer) Render(g *grid.Grid, hour, minute int) Phrase {
	p := r.Compose(hour, minute, ShowLeadIn(minute, r.coin))
	g.Clear()
	p.Light(g)
	return p
}
