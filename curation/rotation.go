package curation

import (
	"context"
	"time"
)

// DefaultRotationInterval is how long each showcase slide stays up.
const DefaultRotationInterval = 5 * time.Second

// Rotation is the slide index of one display session. It is not safe for
// concurrent use; each session owns its own value.
type Rotation struct {
	index int
	n     int
}

// NewRotation starts at slide 0 of n.
func NewRotation(n int) *Rotation {
	return &Rotation{n: max(n, 0)}
}

// Index returns the current slide.
func (r *Rotation) Index() int { return r.index }

// Len returns the number of slides.
func (r *Rotation) Len() int { return r.n }

// Advance moves to the next slide, wrapping to 0, and returns the new index.
func (r *Rotation) Advance() int {
	if r.n > 0 {
		r.index = (r.index + 1) % r.n
	}
	return r.index
}

// Retreat moves to the previous slide, wrapping to n-1.
func (r *Rotation) Retreat() int {
	if r.n > 0 {
		r.index = (r.index - 1 + r.n) % r.n
	}
	return r.index
}

// Go jumps to slide i, taken modulo the slide count.
func (r *Rotation) Go(i int) int {
	if r.n > 0 {
		r.index = ((i % r.n) + r.n) % r.n
	}
	return r.index
}

// Rotate advances a fresh Rotation of n slides every interval and sends each
// new index on the returned channel. The channel is closed once ctx is done,
// which is how a session tears its timer down. Nothing is sent when n or
// every is not positive.
func Rotate(ctx context.Context, n int, every time.Duration) <-chan int {
	return RotateFrom(ctx, n, 0, every)
}

// RotateFrom is Rotate for a session that starts on slide start, as after a
// manual jump. start is taken modulo n.
func RotateFrom(ctx context.Context, n, start int, every time.Duration) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		if n <= 0 || every <= 0 {
			return
		}
		r := NewRotation(n)
		r.Go(start)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- r.Advance():
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
