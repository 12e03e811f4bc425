package wordclock

import (
	"fmt"
	"slices"
	"strings"

	"wordclock/internal/grid"
)

// Word is one token on the board and the cells that spell it.
type Word struct {
	Text string
	Span grid.Span
}

func word(text string, row, start, end int) Word {
	return Word{Text: text, Span: grid.Span{Row: row, Start: start, End: end}}
}

// Catalog is the static phrase table of one variant. Lookup hands out
// copies, so the tables themselves never change.
type Catalog struct {
	Variant Variant

	// Board is the printed letter layout of the word rows.
	Board [grid.WordRows]string

	LeadIn  []Word
	Minutes [BucketCount][]Word

	// Hours is indexed by the 12-hour-cycle hour, 0 being twelve.
	Hours [12]Word

	// OnHourOne replaces Hours[1] on the hour when set ("ein uhr").
	OnHourOne *Word

	// OClock is lit on the hour when set.
	OClock *Word
}

// HourWord returns the word naming seg.Hour.
func (c *Catalog) HourWord(seg Segment) Word {
	if seg.Hour == 1 && seg.Bucket == OnHour && c.OnHourOne != nil {
		return *c.OnHourOne
	}
	return c.Hours[seg.Hour]
}

// Letter returns the printed letter at a word-row cell.
func (c *Catalog) Letter(row, col int) rune {
	return []rune(c.Board[row])[col]
}

// Spell returns the letters printed under a span, lower-cased.
func (c *Catalog) Spell(s grid.Span) string {
	letters := []rune(c.Board[s.Row])[s.Start : s.End+1]
	return strings.ToLower(string(letters))
}

// minuteWords lays out the twelve minute phrases from the seven minute
// tokens, which both boards print at the same positions.
func minuteWords(five, ten, quarter, twenty, to, past, half Word) [BucketCount][]Word {
	return [BucketCount][]Word{
		OnHour:       nil,
		FivePast:     {five, past},
		TenPast:      {ten, past},
		QuarterPast:  {quarter, past},
		TwentyPast:   {twenty, past},
		FiveToHalf:   {five, to, half},
		Half:         {half},
		FivePastHalf: {five, past, half},
		TwentyTo:     {twenty, to},
		QuarterTo:    {quarter, to},
		TenTo:        {ten, to},
		FiveTo:       {five, to},
	}
}

var (
	minFive    = word("fünf", 1, 0, 3)
	minTen     = word("zehn", 2, 7, 10)
	minQuarter = word("viertel", 2, 0, 6)
	minTwenty  = word("zwanzig", 1, 4, 10)
	minTo      = word("vor", 3, 1, 3)
	minHalf    = word("halb", 4, 0, 3)
)

var (
	standardOne    = word("ein", 4, 7, 9)
	standardOClock = word("uhr", 9, 8, 10)
)

var standardCatalog = Catalog{
	Variant: Standard,
	Board: [grid.WordRows]string{
		"HESCEISTHLS",
		"FÜNFZWANZIG",
		"VIERTELZEHN",
		"FVORLNACHNS",
		"HALBHZWEINS",
		"DREIVSECHSE",
		"SIEBENZNEUN",
		"FÜNFENACHTE",
		"VIERNZWÖLFE",
		"ELFZEHNEUHR",
	},
	LeadIn: []Word{
		word("es", 0, 1, 2),
		word("ist", 0, 5, 7),
	},
	Minutes: minuteWords(minFive, minTen, minQuarter, minTwenty, minTo, word("nach", 3, 5, 8), minHalf),
	Hours: [12]Word{
		word("zwölf", 8, 5, 9),
		word("eins", 4, 7, 10),
		word("zwei", 4, 5, 8),
		word("drei", 5, 0, 3),
		word("vier", 8, 0, 3),
		word("fünf", 7, 0, 3),
		word("sechs", 5, 5, 9),
		word("sieben", 6, 0, 5),
		word("acht", 7, 6, 9),
		word("neun", 6, 7, 10),
		word("zehn", 9, 3, 6),
		word("elf", 9, 0, 2),
	},
	OnHourOne: &standardOne,
	OClock:    &standardOClock,
}

var dialectCatalog = Catalog{
	Variant: Dialect,
	Board: [grid.WordRows]string{
		"HESCEISCHOS",
		"FÜNFZWANZIG",
		"VIERTELZEHN",
		"FVORLNOCHNS",
		"HALBHZWOANS",
		"DREIVSECHSE",
		"SIEBNEZNÜNE",
		"FÜNFEOACHTE",
		"VIERENZEHNE",
		"ELFEIZWÖLFE",
	},
	LeadIn: []Word{
		word("es", 0, 1, 2),
		word("isch", 0, 5, 8),
	},
	Minutes: minuteWords(minFive, minTen, minQuarter, minTwenty, minTo, word("noch", 3, 5, 8), minHalf),
	Hours: [12]Word{
		word("zwölfe", 9, 5, 10),
		word("oans", 4, 7, 10),
		word("zwoa", 4, 5, 8),
		word("drei", 5, 0, 3),
		word("viere", 8, 0, 4),
		word("fünfe", 7, 0, 4),
		word("sechse", 5, 5, 10),
		word("siebne", 6, 0, 5),
		word("achte", 7, 6, 10),
		word("nüne", 6, 7, 10),
		word("zehne", 8, 6, 10),
		word("elfe", 9, 0, 3),
	},
}

// catalogs maps each variant to its phrase table.
var catalogs = map[Variant]*Catalog{
	Standard: &standardCatalog,
	Dialect:  &dialectCatalog,
}

// Variants lists the supported variants.
func Variants() []Variant {
	return []Variant{Standard, Dialect}
}

// Lookup returns a copy of the phrase table for v.
func Lookup(v Variant) (Catalog, error) {
	c, ok := catalogs[v]
	if !ok {
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	return c.clone(), nil
}

func (c *Catalog) clone() Catalog {
	out := *c
	out.LeadIn = slices.Clone(c.LeadIn)
	for b := range c.Minutes {
		out.Minutes[b] = slices.Clone(c.Minutes[b])
	}
	if c.OnHourOne != nil {
		w := *c.OnHourOne
		out.OnHourOne = &w
	}
	if c.OClock != nil {
		w := *c.OClock
		out.OClock = &w
	}
	return out
}
