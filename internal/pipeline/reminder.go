package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quicksell-labs/martbot/internal/store"
	"go.uber.org/zap"
)

const (
	maxContactReminders = 2
	reminderSpacing     = 7 * 24 * time.Hour
)

// maybeSendContactReminder sends the "save my contact" nudge with a
// vCard attachment, at most twice per user and at least a week apart.
// The nudge rides along with a regular reply and never counts against
// the user's daily budget; failures are logged and the reply proceeds.
func (p *Pipeline) maybeSendContactReminder(ctx context.Context, user *store.User, now time.Time, log *zap.Logger) {
	if user.ReminderCount >= maxContactReminders {
		return
	}
	if user.LastReminderAt > 0 {
		last := time.UnixMilli(user.LastReminderAt)
		if now.Sub(last) < reminderSpacing {
			return
		}
	}

	nudge := fmt.Sprintf("By the way, save %s to your contacts so my messages always reach you!", p.identity.Name)
	if err := p.transport.SendContactCard(ctx, user.JID, p.identity.Name, p.contactVCard()); err != nil {
		log.Warn("send contact card failed", zap.Error(err))
		return
	}
	if _, err := p.transport.SendText(ctx, user.JID, nudge); err != nil {
		log.Warn("send contact nudge failed", zap.Error(err))
		return
	}
	if err := p.db.MarkReminderSent(user.ID, now); err != nil {
		log.Error("mark reminder failed", zap.Error(err))
	}
	if err := p.db.AppendLog(&store.LogEntry{
		UserID:    user.ID,
		JID:       user.JID,
		Direction: store.DirectionOut,
		Body:      nudge,
		MediaType: "contact",
		CreatedAt: now.UnixMilli(),
	}); err != nil {
		log.Error("log contact nudge failed", zap.Error(err))
	}
	log.Info("contact reminder sent", zap.Int("count", user.ReminderCount+1))
}

// contactVCard builds the store's vCard from the configured identity.
func (p *Pipeline) contactVCard() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, p.identity.Phone)

	var b strings.Builder
	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(&b, "FN:%s\n", p.identity.Name)
	fmt.Fprintf(&b, "ORG:%s\n", p.identity.Name)
	fmt.Fprintf(&b, "TEL;type=CELL;waid=%s:%s\n", digits, p.identity.Phone)
	if p.identity.URL != "" {
		fmt.Fprintf(&b, "URL:%s\n", p.identity.URL)
	}
	b.WriteString("END:VCARD\n")
	return b.String()
}
