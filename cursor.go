package bitscan

import (
	"iter"

	"github.com/hupe1980/bitscan/internal/scan"
)

// Cursor walks the set bits of a BitSet once, in ascending order, keeping its
// word and mask position between calls.
//
// A Cursor is single-use. Once Advance reports false it stays exhausted.
// Mutating or closing the BitSet while a cursor is in use stops the cursor
// and Err returns ErrStaleCursor (or ErrClosed).
type Cursor struct {
	bs  *BitSet
	pos scan.Position

	capacity   int
	generation uint64

	done bool
	err  error
}

// Cursor returns a cursor positioned before index 0.
func (b *BitSet) Cursor() *Cursor {
	c := &Cursor{
		bs:         b,
		pos:        scan.Before(),
		capacity:   b.capacity,
		generation: b.generation,
	}
	if b.closed {
		c.done = true
		c.err = ErrClosed
	}
	return c
}

// Advance returns the next set index, or (-1, false) when the cursor is
// exhausted or has failed. Check Err to tell the two apart.
func (c *Cursor) Advance() (int, bool) {
	if c.done {
		return -1, false
	}

	if c.bs.generation != c.generation {
		c.done = true
		if c.bs.closed {
			c.err = ErrClosed
		} else {
			c.err = ErrStaleCursor
		}
		c.bs.logger.LogStaleCursor(c.generation, c.bs.generation)
		return -1, false
	}

	p, ok := scan.Advance(c.bs.words, c.capacity, c.pos)
	c.bs.metrics.RecordScan(ok)
	if !ok {
		c.done = true
		return -1, false
	}

	c.pos = p
	return p.Index, true
}

// Err returns the error that stopped the cursor, or nil if it ran to the end
// (or has not finished yet).
func (c *Cursor) Err() error {
	return c.err
}

// All returns a single-pass sequence that drains the cursor.
// Breaking out of the loop leaves the cursor where it stopped.
func (c *Cursor) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			i, ok := c.Advance()
			if !ok || !yield(i) {
				return
			}
		}
	}
}
