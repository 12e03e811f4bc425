// Package display hands rendered grids to something that lights them: a
// terminal simulator of the board or a plain text dump.
package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"wordclock/internal/grid"
	"wordclock/internal/wordclock"
)

// Driver shows one grid at a time.
type Driver interface {
	Show(g *grid.Grid) error
	Close() error
}

// Board is a Driver whose letters, colour and brightness can change
// between frames, as the settings form asks.
type Board interface {
	Driver
	SetCatalog(c wordclock.Catalog)
	SetColor(c tcell.Color)
	SetBrightness(b Brightness)
	Brightness() Brightness
}

const (
	dot     = '•'
	darkDot = '·'

	// precisionCol is the board column the first minute dot sits under.
	precisionCol = grid.Size - grid.PrecisionCells
)

var (
	_ Board  = (*Terminal)(nil)
	_ Driver = (*Text)(nil)
)

// ---- Terminal

// Terminal paints the letter board on a tcell screen, lit letters in the
// configured colour and the rest dimmed.
type Terminal struct {
	screen     tcell.Screen
	catalog    wordclock.Catalog
	color      tcell.Color
	brightness Brightness
}

// NewTerminal creates a terminal driver on an initialised screen.
func NewTerminal(screen tcell.Screen, catalog wordclock.Catalog, color tcell.Color, brightness Brightness) *Terminal {
	return &Terminal{
		screen:     screen,
		catalog:    catalog,
		color:      color,
		brightness: brightness.Clamp(),
	}
}

func (t *Terminal) SetCatalog(c wordclock.Catalog) { t.catalog = c }

func (t *Terminal) SetColor(c tcell.Color) { t.color = c }

func (t *Terminal) SetBrightness(b Brightness) { t.brightness = b.Clamp() }

func (t *Terminal) Brightness() Brightness { return t.brightness }

func (t *Terminal) litStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(Scale(t.color, t.brightness)).Bold(true)
}

func (t *Terminal) darkStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 60))
}

// origin returns the top-left cell that centres the board. Letters are
// spaced one column apart.
func (t *Terminal) origin() (int, int) {
	width, height := t.screen.Size()
	boardWidth := grid.Size*2 - 1
	return max((width-boardWidth)/2, 0), max((height-grid.Size)/2, 0)
}

// Show draws g and flushes the screen.
func (t *Terminal) Show(g *grid.Grid) error {
	t.screen.Clear()
	ox, oy := t.origin()
	lit, dark := t.litStyle(), t.darkStyle()

	for row := 0; row < grid.WordRows; row++ {
		for col := 0; col < grid.Size; col++ {
			style := dark
			if g[row][col] {
				style = lit
			}
			t.screen.SetContent(ox+col*2, oy+row, t.catalog.Letter(row, col), nil, style)
		}
	}
	for i := 0; i < grid.PrecisionCells; i++ {
		ch, style := darkDot, dark
		if g[grid.PrecisionRow][i] {
			ch, style = dot, lit
		}
		t.screen.SetContent(ox+(precisionCol+i)*2, oy+grid.PrecisionRow, ch, nil, style)
	}

	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

// ---- Text

// Text writes each grid as the letter board, lit letters upper-case and
// dark ones as dots.
type Text struct {
	w       io.Writer
	catalog wordclock.Catalog
}

// NewText creates a text driver writing to w.
func NewText(w io.Writer, catalog wordclock.Catalog) *Text {
	return &Text{w: w, catalog: catalog}
}

func (t *Text) Show(g *grid.Grid) error {
	bw := bufio.NewWriter(t.w)
	for row := 0; row < grid.WordRows; row++ {
		for col := 0; col < grid.Size; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			ch := darkDot
			if g[row][col] {
				ch = t.catalog.Letter(row, col)
			}
			bw.WriteRune(ch)
		}
		bw.WriteByte('\n')
	}
	for col := 0; col < grid.Size; col++ {
		if col > 0 {
			bw.WriteByte(' ')
		}
		ch := ' '
		if i := col - precisionCol; i >= 0 {
			ch = darkDot
			if g[grid.PrecisionRow][i] {
				ch = dot
			}
		}
		bw.WriteRune(ch)
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	return nil
}

func (t *Text) Close() error { return nil }
