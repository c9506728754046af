// Package reveal implements the client-local scratch-card state machine.
// Visibility is a pure function of wall-clock time, so the mobile client can
// re-evaluate it on a coarse timer without any server round-trip.
package reveal

import (
	"math"
	"time"
)

// Phase is what the scratch surface should show right now.
type Phase string

const (
	Unrevealed Phase = "unrevealed" // scratchable surface
	Visible    Phase = "visible"    // content shown
	Faded      Phase = "faded"      // content visually suppressed
	Hidden     Phase = "hidden"     // content withdrawn
	Expired    Phase = "expired"    // never revealed, past expiry
	Collected  Phase = "collected"  // used through another path
)

const (
	// VisibleWindow is how long content stays fully readable after reveal.
	VisibleWindow = 90 * time.Second
	// HideAfter is the cutoff past which content is withdrawn entirely.
	// Between VisibleWindow and HideAfter the content is faded.
	HideAfter = 5 * time.Minute
)

// Visibility computes the display phase for a scratch token.
//
// Once revealedAt is set the phase depends only on elapsed time since the
// reveal; expiry no longer matters. An unrevealed token that is marked used
// (any other path) shows the collected badge. An unrevealed, unused token
// past expiresAt shows the expired badge instead of the scratch surface.
func Visibility(now time.Time, revealedAt *time.Time, expiresAt time.Time, used bool) Phase {
	if revealedAt != nil {
		age := now.Sub(*revealedAt)
		switch {
		case age <= VisibleWindow:
			return Visible
		case age <= HideAfter:
			return Faded
		default:
			return Hidden
		}
	}
	if used {
		return Collected
	}
	if now.After(expiresAt) {
		return Expired
	}
	return Unrevealed
}

const (
	// baseFactor is credited per gesture sample regardless of speed.
	baseFactor = 0.005
	// velocityFactor scales the gesture speed contribution.
	velocityFactor = 0.005
	// RevealThreshold is the cumulative progress that triggers reveal.
	RevealThreshold = 0.4
)

// Pad accumulates scratch-gesture progress for one token. Not safe for
// concurrent use; one pad belongs to one scratch surface.
type Pad struct {
	progress float64
	fired    bool
}

// Progress is the cumulative scratch amount in [0,1].
func (p *Pad) Progress() float64 { return p.progress }

// AddSample feeds one gesture move with velocity components vx, vy.
// It returns true exactly once: on the sample that crosses the reveal
// threshold. Further samples keep filling progress but never re-fire.
func (p *Pad) AddSample(vx, vy float64) bool {
	velocity := math.Sqrt(vx*vx + vy*vy)
	p.progress = math.Min(p.progress+baseFactor+velocity*velocityFactor, 1)

	if !p.fired && p.progress >= RevealThreshold {
		p.fired = true
		return true
	}
	return false
}

// Fired reports whether the pad has already triggered its reveal.
func (p *Pad) Fired() bool { return p.fired }
