// clicks.go - Multi-click detection for the demo shell
package main

import "time"

const (
	// multiClickThreshold is the longest gap between presses that
	// still counts as a double/triple click.
	multiClickThreshold = 500 * time.Millisecond

	// multiClickTolerance is how many cells the pointer may drift
	// horizontally between presses.
	multiClickTolerance = 1
)

// clickCounter turns consecutive presses into a click count, cycling
// 1 -> 2 -> 3 -> 1 while presses stay close in time and position.
type clickCounter struct {
	count        int
	last         time.Time
	lastX, lastY int
}

func (c *clickCounter) press(x, y int) int {
	now := time.Now()
	dx := x - c.lastX
	if dx < 0 {
		dx = -dx
	}
	near := dx <= multiClickTolerance && y == c.lastY
	if !c.last.IsZero() && now.Sub(c.last) < multiClickThreshold && near {
		c.count = c.count%3 + 1
	} else {
		c.count = 1
	}
	c.last = now
	c.lastX, c.lastY = x, y
	return c.count
}
