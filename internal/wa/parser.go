package wa

import (
	"time"

	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// Inbound is a normalized inbound message ready for the pipeline.
type Inbound struct {
	JID       string // sender address, device suffix stripped
	PushName  string
	Body      string
	MediaType string // empty for plain text
	FromMe    bool
	IsGroup   bool
	Timestamp time.Time
}

// ParseInbound normalizes a live whatsmeow message event.
func ParseInbound(evt *events.Message) *Inbound {
	sender := evt.Info.Sender.ToNonAD()
	return &Inbound{
		JID:       sender.String(),
		PushName:  evt.Info.PushName,
		Body:      extractTextBody(evt.Message),
		MediaType: detectMediaType(evt.Message),
		FromMe:    evt.Info.IsFromMe,
		IsGroup:   evt.Info.Chat.Server == types.GroupServer,
		Timestamp: evt.Info.Timestamp,
	}
}

func extractTextBody(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if c := msg.GetConversation(); c != "" {
		return c
	}
	if ext := msg.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}
	if img := msg.GetImageMessage(); img != nil {
		return img.GetCaption()
	}
	if vid := msg.GetVideoMessage(); vid != nil {
		return vid.GetCaption()
	}
	return ""
}

// detectMediaType returns the attachment kind, or empty for plain text.
func detectMediaType(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	switch {
	case msg.GetImageMessage() != nil:
		return "image"
	case msg.GetVideoMessage() != nil:
		return "video"
	case msg.GetAudioMessage() != nil:
		return "audio"
	case msg.GetDocumentMessage() != nil:
		return "document"
	case msg.GetStickerMessage() != nil:
		return "sticker"
	case msg.GetLocationMessage() != nil:
		return "location"
	default:
		return ""
	}
}
