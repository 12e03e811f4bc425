package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_LightAndClear(t *testing.T) {
	var g Grid
	g.Light(Span{Row: 4, Start: 7, End: 10})

	require.True(t, g.Lit(Span{Row: 4, Start: 7, End: 10}))
	assert.False(t, g.Lit(Span{Row: 4, Start: 6, End: 10}))
	assert.Equal(t, "00000001111", g.Rows()[4])

	want := Grid{}
	want[4][7], want[4][8], want[4][9], want[4][10] = true, true, true, true
	assert.Equal(t, want, g)

	g.Clear()
	assert.Equal(t, Grid{}, g)
}

func TestGrid_LightRun(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "none", n: 0, want: "00000000000"},
		{name: "one", n: 1, want: "10000000000"},
		{name: "four", n: 4, want: "11110000000"},
		{name: "negative lights nothing", n: -1, want: "00000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			g.LightRun(PrecisionRow, tt.n)
			assert.Equal(t, tt.want, g.Rows()[PrecisionRow])
		})
	}
}

func TestGrid_String(t *testing.T) {
	var g Grid
	g[0][1] = true
	g[10][10] = true

	rows := g.Rows()
	require.Len(t, rows, Size)
	assert.Equal(t, "01000000000", rows[0])
	assert.Equal(t, "00000000001", rows[10])
	assert.Equal(t, rows[0]+"\n", g.String()[:Size+1])
}
