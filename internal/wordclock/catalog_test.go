package wordclock

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordclock/internal/grid"
)

func catalogWords(c *Catalog) []Word {
	var words []Word
	words = append(words, c.LeadIn...)
	for _, ws := range c.Minutes {
		words = append(words, ws...)
	}
	words = append(words, c.Hours[:]...)
	if c.OnHourOne != nil {
		words = append(words, *c.OnHourOne)
	}
	if c.OClock != nil {
		words = append(words, *c.OClock)
	}
	return words
}

func TestCatalogs_BoardShape(t *testing.T) {
	for v, c := range catalogs {
		t.Run(string(v), func(t *testing.T) {
			assert.Equal(t, v, c.Variant)
			for row, letters := range c.Board {
				assert.Equal(t, grid.Size, utf8.RuneCountInString(letters), "row %d", row)
			}
		})
	}
}

func TestCatalogs_WordsSpellTheirText(t *testing.T) {
	for v, c := range catalogs {
		t.Run(string(v), func(t *testing.T) {
			for _, w := range catalogWords(c) {
				require.GreaterOrEqual(t, w.Span.Row, 0)
				require.Less(t, w.Span.Row, grid.WordRows, "word %q", w.Text)
				require.GreaterOrEqual(t, w.Span.Start, 0)
				require.Less(t, w.Span.End, grid.Size, "word %q", w.Text)
				require.LessOrEqual(t, w.Span.Start, w.Span.End)
				assert.Equal(t, w.Text, c.Spell(w.Span))
			}
		})
	}
}

func TestCatalogs_VariantSpecials(t *testing.T) {
	std := catalogs[Standard]
	require.NotNil(t, std.OnHourOne)
	require.NotNil(t, std.OClock)
	assert.Equal(t, "ein", std.OnHourOne.Text)
	assert.Equal(t, "uhr", std.OClock.Text)
	assert.Equal(t, []string{"es", "ist"}, []string{std.LeadIn[0].Text, std.LeadIn[1].Text})

	dia := catalogs[Dialect]
	assert.Nil(t, dia.OnHourOne)
	assert.Nil(t, dia.OClock)
	assert.Equal(t, []string{"es", "isch"}, []string{dia.LeadIn[0].Text, dia.LeadIn[1].Text})
}

func TestCatalog_HourWord(t *testing.T) {
	std := catalogs[Standard]
	assert.Equal(t, "ein", std.HourWord(Segment{Bucket: OnHour, Hour: 1}).Text)
	assert.Equal(t, "eins", std.HourWord(Segment{Bucket: FivePast, Hour: 1}).Text)
	assert.Equal(t, "eins", std.HourWord(Segment{Bucket: Half, Hour: 1}).Text)
	assert.Equal(t, "zwölf", std.HourWord(Segment{Bucket: OnHour, Hour: 0}).Text)

	dia := catalogs[Dialect]
	assert.Equal(t, "oans", dia.HourWord(Segment{Bucket: OnHour, Hour: 1}).Text)
	assert.Equal(t, "oans", dia.HourWord(Segment{Bucket: TenTo, Hour: 1}).Text)
}

func TestCatalog_Letter(t *testing.T) {
	std := catalogs[Standard]
	assert.Equal(t, 'Ü', std.Letter(1, 1))
	assert.Equal(t, 'R', std.Letter(9, 10))
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "standard", want: Standard},
		{in: " Deutsch ", want: Standard},
		{in: "de", want: Standard},
		{in: "dialect", want: Dialect},
		{in: "DIALEKT", want: Dialect},
		{in: "klingon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c, err := Lookup(Standard)
	require.NoError(t, err)

	c.Hours[7].Span = grid.Span{Row: 0, Start: 0, End: 10}
	c.Minutes[QuarterPast][0].Text = "dreiviertel"
	c.OClock.Span.Start = 0

	fresh, err := Lookup(Standard)
	require.NoError(t, err)
	assert.Equal(t, "sieben", fresh.Hours[7].Text)
	assert.Equal(t, grid.Span{Row: 6, Start: 0, End: 5}, fresh.Hours[7].Span)
	assert.Equal(t, "viertel", fresh.Minutes[QuarterPast][0].Text)
	assert.Equal(t, 8, fresh.OClock.Span.Start)

	r, err := NewRenderer(Standard, Fixed(false))
	require.NoError(t, err)
	assert.Equal(t, "viertel nach sieben + 2 min", r.Compose(7, 17, false).String())

	rc := r.Catalog()
	rc.LeadIn[0].Text = "xx"
	assert.Equal(t, "es ist sieben uhr + 0 min", r.Compose(7, 0, true).String())
}

func TestLookup_UnknownVariant(t *testing.T) {
	_, err := Lookup(Variant("klingon"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariants(t *testing.T) {
	for _, v := range Variants() {
		c, err := Lookup(v)
		require.NoError(t, err)
		assert.Equal(t, v, c.Variant)
	}
	assert.Len(t, Variants(), len(catalogs))
}
