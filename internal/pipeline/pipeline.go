// Package pipeline orchestrates the automated response flow: one
// inbound message in, at most one reply out, with every send gated by
// opt-out, the daily rate window, the global circuit breaker, quiet
// hours, and the engagement score.
package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/quicksell-labs/martbot/internal/bus"
	"github.com/quicksell-labs/martbot/internal/gate"
	"github.com/quicksell-labs/martbot/internal/genai"
	"github.com/quicksell-labs/martbot/internal/store"
	"github.com/quicksell-labs/martbot/internal/wa"
	"go.uber.org/zap"
)

// historySize is how many prior log entries feed the generator.
const historySize = 10

// Transport is the outbound capability the pipeline needs from the
// WhatsApp adapter.
type Transport interface {
	SendText(ctx context.Context, jid, text string) (string, error)
	SendContactCard(ctx context.Context, jid, displayName, vcard string) error
	SetTyping(ctx context.Context, jid string, composing bool) error
}

// StoreIdentity is what the contact-reminder nudge introduces.
type StoreIdentity struct {
	Name  string
	Phone string
	URL   string
}

// Pipeline processes inbound messages from the bus.
type Pipeline struct {
	db        *store.DB
	transport Transport
	gen       genai.Generator
	rate      *gate.RateWindow
	breaker   *gate.Breaker
	quiet     gate.QuietHours
	engage    *gate.Engagement
	bus       *bus.Bus
	logger    *zap.Logger
	identity  StoreIdentity

	cancel context.CancelFunc

	// Overridable for tests.
	now     func() time.Time
	sleep   func(time.Duration)
	randInt func(n int) int
}

// New creates a pipeline. loc drives every "today" comparison.
func New(db *store.DB, transport Transport, gen genai.Generator, b *bus.Bus,
	identity StoreIdentity, loc *time.Location, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		db:        db,
		transport: transport,
		gen:       gen,
		rate:      gate.NewRateWindow(db, loc),
		breaker:   gate.NewBreaker(db, loc),
		quiet:     gate.NewQuietHours(loc),
		engage:    gate.NewEngagement(db),
		bus:       b,
		logger:    logger,
		identity:  identity,
		now:       time.Now,
		sleep:     time.Sleep,
		randInt:   rand.IntN,
	}
}

// Start subscribes to inbound message events on the bus. Each message
// is handled in its own goroutine; messages for the same user are not
// serialized (the counter updates themselves are atomic).
func (p *Pipeline) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	ch, unsub := p.bus.Subscribe("wa.message", 256)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				msg, ok := evt.Payload.(*wa.Inbound)
				if !ok {
					continue
				}
				go p.Handle(ctx, msg)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the pipeline.
func (p *Pipeline) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
}

// Handle runs the full gate sequence for one inbound message. Gate
// rejections are deliberate terminations, not errors; only persistence
// and transport failures abort processing.
func (p *Pipeline) Handle(ctx context.Context, msg *wa.Inbound) {
	log := p.logger.With(zap.String("jid", msg.JID))
	now := p.now()

	user, err := p.db.EnsureUser(msg.JID, msg.PushName)
	if err != nil {
		log.Error("resolve user failed", zap.Error(err))
		return
	}

	// The inbound message is always logged, whatever happens next.
	inboundAt := now.UnixMilli()
	if err := p.db.AppendLog(&store.LogEntry{
		UserID:    user.ID,
		JID:       msg.JID,
		Direction: store.DirectionIn,
		Body:      msg.Body,
		MediaType: msg.MediaType,
		CreatedAt: inboundAt,
	}); err != nil {
		log.Error("log inbound failed", zap.Error(err))
		return
	}
	if err := p.db.TouchInteraction(user.ID, now); err != nil {
		log.Warn("touch interaction failed", zap.Error(err))
	}

	// Compliance path: an opt-out keyword short-circuits everything,
	// including the gates the confirmation send would otherwise face.
	if IsStopRequest(msg.Body) {
		p.handleOptOut(ctx, user, log)
		return
	}

	if user.OptedOut {
		log.Info("user opted out, dropping")
		return
	}

	decision := p.rate.Check(user, now)
	if !decision.Allowed {
		p.sendThrottleNotice(ctx, user, decision.Notice, log)
		return
	}

	allowed, err := p.breaker.Allow(now)
	if err != nil {
		log.Error("breaker check failed", zap.Error(err))
		return
	}
	if !allowed {
		// Silent on purpose: the ceiling protects the account, the
		// user is not told about it.
		log.Warn("global send limit reached, dropping")
		p.publish("pipeline.breaker_tripped", msg.JID)
		return
	}

	if p.quiet.IsQuiet(now) {
		log.Info("quiet hours, dropping")
		return
	}

	if !gate.Engaged(user) {
		log.Info("user below engagement threshold, dropping",
			zap.Int("score", user.EngagementScore))
		return
	}

	p.maybeSendContactReminder(ctx, user, now, log)

	reply := p.generateReply(ctx, user, msg, inboundAt, log)

	delay := p.responseDelay(reply)
	p.simulateTyping(ctx, msg.JID, delay)

	if _, err := p.transport.SendText(ctx, msg.JID, reply); err != nil {
		// At-most-once: the failure is logged, never retried.
		log.Error("send failed", zap.Error(err))
		return
	}

	if err := p.rate.Advance(user.ID, p.now()); err != nil {
		log.Error("advance rate window failed", zap.Error(err))
	}
	if err := p.engage.Adjust(user.ID, true); err != nil {
		log.Error("adjust engagement failed", zap.Error(err))
	}
	if err := p.db.AppendLog(&store.LogEntry{
		UserID:          user.ID,
		JID:             msg.JID,
		Direction:       store.DirectionOut,
		Body:            reply,
		ResponseDelayMs: delay.Milliseconds(),
		CreatedAt:       p.now().UnixMilli(),
	}); err != nil {
		log.Error("log outbound failed", zap.Error(err))
	}
	p.publish("pipeline.responded", msg.JID)
}

// handleOptOut sets the terminal flag and sends the one confirmation
// this subsystem will ever send to the user. The confirmation does not
// advance the rate counter.
func (p *Pipeline) handleOptOut(ctx context.Context, user *store.User, log *zap.Logger) {
	if err := p.db.SetOptedOut(user.ID, true); err != nil {
		log.Error("set opt-out failed", zap.Error(err))
		return
	}
	if user.OptedOut {
		// Already opted out earlier; the confirmation was sent then.
		log.Info("repeat opt-out request, dropping")
		return
	}
	if _, err := p.transport.SendText(ctx, user.JID, optOutConfirmation); err != nil {
		log.Error("send opt-out confirmation failed", zap.Error(err))
		return
	}
	if err := p.db.AppendLog(&store.LogEntry{
		UserID:    user.ID,
		JID:       user.JID,
		Direction: store.DirectionOut,
		Body:      optOutConfirmation,
		CreatedAt: p.now().UnixMilli(),
	}); err != nil {
		log.Error("log opt-out confirmation failed", zap.Error(err))
	}
	log.Info("user opted out")
	p.publish("pipeline.opted_out", user.JID)
}

// sendThrottleNotice tells the user the daily budget is spent. The
// notice itself is logged as a throttled outbound row.
func (p *Pipeline) sendThrottleNotice(ctx context.Context, user *store.User, notice string, log *zap.Logger) {
	if _, err := p.transport.SendText(ctx, user.JID, notice); err != nil {
		log.Error("send throttle notice failed", zap.Error(err))
		return
	}
	if err := p.db.AppendLog(&store.LogEntry{
		UserID:       user.ID,
		JID:          user.JID,
		Direction:    store.DirectionOut,
		Body:         notice,
		WasThrottled: true,
		CreatedAt:    p.now().UnixMilli(),
	}); err != nil {
		log.Error("log throttle notice failed", zap.Error(err))
	}
	log.Info("daily limit reached, notice sent")
	p.publish("pipeline.throttled", user.JID)
}

// generateReply asks the generator for a response, falling back to the
// generic apology so the user never gets silence from a generator bug.
func (p *Pipeline) generateReply(ctx context.Context, user *store.User, msg *wa.Inbound, inboundAt int64, log *zap.Logger) string {
	history, err := p.db.RecentLog(user.ID, historySize)
	if err != nil {
		log.Warn("history fetch failed", zap.Error(err))
	}

	turns := make([]genai.Turn, 0, len(history))
	for _, e := range history {
		if e.Body == "" {
			continue
		}
		// The current message was logged above; it goes to the
		// generator as the live message, not as history.
		if e.Direction == store.DirectionIn && e.CreatedAt == inboundAt && e.Body == msg.Body {
			continue
		}
		turns = append(turns, genai.Turn{Body: e.Body, FromUser: e.Direction == store.DirectionIn})
	}

	reply, err := p.gen.Generate(ctx, genai.Request{
		UserName:  user.DisplayName,
		History:   turns,
		Message:   msg.Body,
		MediaType: msg.MediaType,
	})
	if err != nil {
		log.Warn("generation failed, using fallback", zap.Error(err))
		return genai.Fallback
	}
	return reply
}

func (p *Pipeline) publish(kind, jid string) {
	p.bus.Publish(bus.Event{
		Kind:      kind,
		Timestamp: p.now(),
		Payload:   jid,
	})
}
