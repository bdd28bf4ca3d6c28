package selection

import (
	"math"
	"time"
)

// AutoScrollConfig tunes edge-triggered scrolling during a drag.
type AutoScrollConfig struct {
	// EdgeZonePx is the band at the top and bottom of the viewport,
	// in pixels, inside which dragging triggers scrolling.
	EdgeZonePx float32

	// Interval is the minimum time between two scroll triggers.
	Interval time.Duration

	// MaxLinesPerTick is the scroll amount when the pointer sits
	// right on the edge; the amount tapers toward 1 at the inner
	// rim of the zone.
	MaxLinesPerTick int

	// Now samples the clock; nil means time.Now.
	Now func() time.Time
}

// DefaultAutoScrollConfig returns the stock tuning: a 30px zone,
// 50ms between triggers, at most 3 lines per trigger.
func DefaultAutoScrollConfig() AutoScrollConfig {
	return AutoScrollConfig{
		EdgeZonePx:      30,
		Interval:        50 * time.Millisecond,
		MaxLinesPerTick: 3,
	}
}

// ScrollSpeed returns the line count for a trigger at the given
// distance from the viewport edge: max(1, round(factor * maxLines))
// where factor grows linearly from 0 at the inner rim of the zone to
// 1 at the edge itself.
func ScrollSpeed(edgeDistance, zonePx float32, maxLines int) int {
	if zonePx <= 0 {
		return 1
	}
	if edgeDistance < 0 {
		edgeDistance = 0
	}
	if edgeDistance > zonePx {
		edgeDistance = zonePx
	}
	factor := (zonePx - edgeDistance) / zonePx
	n := int(math.Round(float64(factor * float32(maxLines))))
	if n < 1 {
		n = 1
	}
	return n
}

// autoScroller holds the one piece of mutable auto-scroll state: the
// last trigger timestamp.
type autoScroller struct {
	cfg  AutoScrollConfig
	last time.Time
}

func (a *autoScroller) now() time.Time {
	if a.cfg.Now != nil {
		return a.cfg.Now()
	}
	return time.Now()
}

// tick evaluates the edge trigger for a pointer position and returns
// the signed line delta to scroll by: negative (toward history) near
// the top edge, positive (toward live output) near the bottom. It
// does not consume the throttle window; the caller reports an actual
// scroll with fired. Each call re-evaluates from scratch, there is no
// hysteresis.
func (a *autoScroller) tick(p Point, b Bounds) (int, bool) {
	zone := a.cfg.EdgeZonePx
	if zone <= 0 {
		return 0, false
	}
	distTop := p.Y - b.Y
	distBottom := b.Y + b.Height - p.Y
	nearTop := distTop < zone
	nearBottom := distBottom < zone
	if !nearTop && !nearBottom {
		return 0, false
	}
	if !a.last.IsZero() && a.now().Sub(a.last) < a.cfg.Interval {
		return 0, false
	}
	// Zones can overlap on a very short viewport; the nearer edge wins.
	if nearTop && (!nearBottom || distTop <= distBottom) {
		return -ScrollSpeed(distTop, zone, a.cfg.MaxLinesPerTick), true
	}
	return ScrollSpeed(distBottom, zone, a.cfg.MaxLinesPerTick), true
}

// fired stamps the throttle after a scroll actually happened.
func (a *autoScroller) fired() {
	a.last = a.now()
}

func (a *autoScroller) reset() {
	a.last = time.Time{}
}
