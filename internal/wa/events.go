package wa

import (
	"context"
	"time"

	"github.com/quicksell-labs/martbot/internal/bus"
	"github.com/quicksell-labs/martbot/internal/status"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
)

// EventHandler processes whatsmeow events, drives the state machine,
// and publishes normalized inbound messages on the bus. The response
// pipeline subscribes to the bus independently.
type EventHandler struct {
	adapter *Adapter
	bus     *bus.Bus
	machine *status.Machine
	logger  *zap.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(adapter *Adapter, b *bus.Bus, machine *status.Machine, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		adapter: adapter,
		bus:     b,
		machine: machine,
		logger:  logger,
	}
}

// Handle is the main whatsmeow event handler function.
func (h *EventHandler) Handle(rawEvt any) {
	switch evt := rawEvt.(type) {
	case *events.Message:
		h.handleMessage(evt)
	case *events.Connected:
		h.logger.Info("WhatsApp connected")
		current := h.machine.Current()
		if current == status.AuthRequired || current == status.Reconnecting {
			_ = h.machine.Transition(status.Connecting)
		}
		_ = h.machine.Transition(status.Ready)
		h.bus.Publish(bus.Event{Kind: "session.connected", Timestamp: time.Now()})
	case *events.Disconnected:
		h.logger.Warn("WhatsApp disconnected")
		_ = h.machine.Transition(status.Reconnecting)
		h.bus.Publish(bus.Event{Kind: "session.disconnected", Timestamp: time.Now()})
		h.adapter.scheduleReconnect()
	case *events.LoggedOut:
		h.logger.Warn("WhatsApp logged out", zap.String("reason", evt.Reason.String()))
		_ = h.machine.Transition(status.AuthRequired)
		h.bus.Publish(bus.Event{Kind: "session.logged_out", Timestamp: time.Now(), Payload: evt.Reason.String()})
	}
}

func (h *EventHandler) handleMessage(evt *events.Message) {
	msg := ParseInbound(evt)

	// Only direct user chats feed the pipeline: the bot never answers
	// itself or group traffic.
	if msg.FromMe || msg.IsGroup {
		return
	}

	// Senders behind a LID need the phone-number JID so replies and
	// counters land on one identity.
	resolved := h.adapter.ResolveLID(context.Background(), evt.Info.Sender)
	msg.JID = resolved.ToNonAD().String()

	h.bus.Publish(bus.Event{
		Kind:      "wa.message",
		Timestamp: time.Now(),
		Payload:   msg,
	})
}
