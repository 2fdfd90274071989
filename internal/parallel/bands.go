// Package parallel splits row ranges of a pixel buffer across goroutines.
//
// Work is divided into disjoint bands of whole rows, so functions that
// only touch pixels of their own band need no synchronization. ForEachBand
// returns only after every band has finished.
package parallel

import (
	"runtime"
	"sync"
)

// shared is the process-wide pool used by ForEachBand, started on first
// use.
var shared = sync.OnceValue(func() *Pool { return NewPool(0) })

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

// Split divides [y0, y1) into at most n bands of near-equal height.
// Each band holds at least minRows rows, except when the whole range is
// shorter than that. A non-positive n means GOMAXPROCS.
func Split(y0, y1, n, minRows int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if minRows < 1 {
		minRows = 1
	}
	if limit := rows / minRows; n > limit {
		n = max(limit, 1)
	}

	bands := make([]Band, 0, n)
	step, extra := rows/n, rows%n
	y := y0
	for i := range n {
		h := step
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// ForEachBand runs fn once per band on the shared pool and waits for all
// of them. A single band runs on the calling goroutine.
func ForEachBand(bands []Band, fn func(Band)) {
	switch len(bands) {
	case 0:
		return
	case 1:
		fn(bands[0])
		return
	}
	shared().Run(bands, fn)
}
