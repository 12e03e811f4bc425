// Package clock supplies the wall-clock time the word clock shows.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrBadDatetime is returned by ParseUnix for anything but a non-negative
// count of seconds.
var ErrBadDatetime = errors.New("bad datetime")

// Source reports the current time.
type Source interface {
	Now() time.Time
}

// SourceFunc adapts a function to Source.
type SourceFunc func() time.Time

func (f SourceFunc) Now() time.Time { return f() }

// System is the host clock shown in a fixed location.
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Adjustable shifts a base source by an offset, the way the board's RTC is
// set from a browser's clock. Safe for concurrent use.
type Adjustable struct {
	base Source

	mu     sync.RWMutex
	offset time.Duration
}

// NewAdjustable wraps base with a zero offset.
func NewAdjustable(base Source) *Adjustable {
	return &Adjustable{base: base}
}

func (a *Adjustable) Now() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.base.Now().Add(a.offset)
}

// Set moves the clock so that it reads t now.
func (a *Adjustable) Set(t time.Time) {
	now := a.base.Now()
	a.mu.Lock()
	a.offset = t.Sub(now)
	a.mu.Unlock()
}

// Offset returns the current shift from the base source.
func (a *Adjustable) Offset() time.Duration {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.offset
}

// ParseUnix parses a unix timestamp in seconds.
func ParseUnix(s string) (time.Time, error) {
	sec, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || sec < 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDatetime, s)
	}
	return time.Unix(sec, 0), nil
}
