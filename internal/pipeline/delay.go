package pipeline

import (
	"context"
	"time"
)

// Delay tiers keyed by reply length. Longer replies get a longer
// "typing" pause so the cadence reads as human.
const (
	longReplyChars  = 100
	shortReplyChars = 50
)

// responseDelay picks a uniformly random delay from the tier the reply
// length falls into.
func (p *Pipeline) responseDelay(reply string) time.Duration {
	var lo, hi int
	switch n := len(reply); {
	case n > longReplyChars:
		lo, hi = 5000, 8000
	case n > shortReplyChars:
		lo, hi = 3000, 5000
	default:
		lo, hi = 2000, 4000
	}
	ms := lo + p.randInt(hi-lo+1)
	return time.Duration(ms) * time.Millisecond
}

// simulateTyping shows the composing indicator for the whole delay.
// Presence failures are cosmetic and never block the reply.
func (p *Pipeline) simulateTyping(ctx context.Context, jid string, delay time.Duration) {
	if err := p.transport.SetTyping(ctx, jid, true); err != nil {
		p.logger.Debug("set typing failed")
	}
	p.sleep(delay)
	if err := p.transport.SetTyping(ctx, jid, false); err != nil {
		p.logger.Debug("clear typing failed")
	}
}
