package wa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/quicksell-labs/martbot/internal/bus"
	"github.com/quicksell-labs/martbot/internal/session"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	_ "github.com/mattn/go-sqlite3"
)

// reconnectDelay is the fixed backoff after an unexpected disconnect.
const reconnectDelay = 3 * time.Second

// maxImageBytes caps how much of a product image URL is fetched.
const maxImageBytes = 5 << 20

// Adapter owns the whatsmeow client and its connection lifecycle. It is
// always constructed and injected; nothing holds a package-level handle.
type Adapter struct {
	client    *whatsmeow.Client
	container *sqlstore.Container
	bus       *bus.Bus
	logger    *zap.Logger
	session   string
	http      *http.Client

	// stopping suppresses the reconnect loop during deliberate
	// shutdown and logout.
	stopping atomic.Bool
}

// NewAdapter creates a WhatsApp adapter for the given session.
func NewAdapter(ctx context.Context, sessionName string, b *bus.Bus, logger *zap.Logger) (*Adapter, error) {
	// Set device name shown on the phone's linked devices list.
	wastore.SetOSInfo("martbot", [3]uint32{0, 1, 0})

	dbPath := session.DeviceDBPath(sessionName)

	container, err := sqlstore.New(ctx, "sqlite3",
		fmt.Sprintf("file:%s?_foreign_keys=on", dbPath),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create device store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, nil)
	// The adapter runs its own fixed-delay reconnect loop; whatsmeow's
	// exponential one would fight it.
	client.EnableAutoReconnect = false

	return &Adapter{
		client:    client,
		container: container,
		bus:       b,
		logger:    logger,
		session:   sessionName,
		http:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// IsLoggedIn returns whether the adapter has valid credentials.
func (a *Adapter) IsLoggedIn() bool {
	return a.client.Store.ID != nil
}

// Connect initiates the WhatsApp connection.
func (a *Adapter) Connect() error {
	a.logger.Info("connecting to WhatsApp")
	a.stopping.Store(false)
	return a.client.Connect()
}

// Disconnect terminates the connection and disables reconnection.
func (a *Adapter) Disconnect() {
	a.logger.Info("disconnecting from WhatsApp")
	a.stopping.Store(true)
	a.client.Disconnect()
}

// Logout invalidates the session and removes credentials.
func (a *Adapter) Logout(ctx context.Context) error {
	a.stopping.Store(true)
	return a.client.Logout(ctx)
}

// RegisterEventHandler adds a handler for whatsmeow events.
func (a *Adapter) RegisterEventHandler(handler whatsmeow.EventHandler) {
	a.client.AddEventHandler(handler)
}

// scheduleReconnect reconnects after the fixed delay unless the
// disconnect was deliberate. Called from the event handler.
func (a *Adapter) scheduleReconnect() {
	if a.stopping.Load() {
		return
	}
	a.logger.Info("scheduling reconnect", zap.Duration("delay", reconnectDelay))
	time.AfterFunc(reconnectDelay, func() {
		if a.stopping.Load() {
			return
		}
		if err := a.client.Connect(); err != nil {
			a.logger.Error("reconnect failed", zap.Error(err))
			// The Disconnected event fires again and reschedules.
		}
	})
}

// SendText sends a text message to the given JID. Returns the server message ID.
func (a *Adapter) SendText(ctx context.Context, jid string, text string) (string, error) {
	to, err := types.ParseJID(jid)
	if err != nil {
		return "", fmt.Errorf("parse JID: %w", err)
	}
	resp, err := a.client.SendMessage(ctx, to, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return resp.ID, nil
}

// SendImage fetches an image URL, uploads it, and sends it with a caption.
func (a *Adapter) SendImage(ctx context.Context, jid, url, caption string) error {
	to, err := types.ParseJID(jid)
	if err != nil {
		return fmt.Errorf("parse JID: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("image request: %w", err)
	}
	httpResp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch image: status %d", httpResp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxImageBytes))
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	uploaded, err := a.client.Upload(ctx, data, whatsmeow.MediaImage)
	if err != nil {
		return fmt.Errorf("upload image: %w", err)
	}

	mime := httpResp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/jpeg"
	}
	_, err = a.client.SendMessage(ctx, to, &waE2E.Message{
		ImageMessage: &waE2E.ImageMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(mime),
			URL:           proto.String(uploaded.URL),
			DirectPath:    proto.String(uploaded.DirectPath),
			MediaKey:      uploaded.MediaKey,
			FileEncSHA256: uploaded.FileEncSHA256,
			FileSHA256:    uploaded.FileSHA256,
			FileLength:    proto.Uint64(uploaded.FileLength),
		},
	})
	if err != nil {
		return fmt.Errorf("send image: %w", err)
	}
	return nil
}

// SendContactCard sends a vCard contact message.
func (a *Adapter) SendContactCard(ctx context.Context, jid, displayName, vcard string) error {
	to, err := types.ParseJID(jid)
	if err != nil {
		return fmt.Errorf("parse JID: %w", err)
	}
	_, err = a.client.SendMessage(ctx, to, &waE2E.Message{
		ContactMessage: &waE2E.ContactMessage{
			DisplayName: proto.String(displayName),
			Vcard:       proto.String(vcard),
		},
	})
	if err != nil {
		return fmt.Errorf("send contact card: %w", err)
	}
	return nil
}

// SetTyping toggles the composing chat-presence indicator.
func (a *Adapter) SetTyping(ctx context.Context, jid string, composing bool) error {
	to, err := types.ParseJID(jid)
	if err != nil {
		return fmt.Errorf("parse JID: %w", err)
	}
	state := types.ChatPresencePaused
	if composing {
		state = types.ChatPresenceComposing
	}
	return a.client.SendChatPresence(ctx, to, state, types.ChatPresenceMediaText)
}

// GetQRChannel returns the QR channel for pairing. Must be called before Connect.
func (a *Adapter) GetQRChannel(ctx context.Context) (<-chan whatsmeow.QRChannelItem, error) {
	if a.IsLoggedIn() {
		return nil, fmt.Errorf("already logged in")
	}
	ch, err := a.client.GetQRChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("get QR channel: %w", err)
	}
	return ch, nil
}

// PhoneNumber returns the phone number from the device store, or empty string.
func (a *Adapter) PhoneNumber() string {
	if a.client.Store.ID == nil {
		return ""
	}
	return a.client.Store.ID.User
}

// ResolveLID resolves a LID JID to its phone number JID using the device store mapping.
// Returns the original JID if it's not a LID or if resolution fails.
func (a *Adapter) ResolveLID(ctx context.Context, jid types.JID) types.JID {
	if jid.Server != types.HiddenUserServer && jid.Server != types.HostedLIDServer {
		return jid
	}
	if a.client == nil || a.client.Store == nil || a.client.Store.LIDs == nil {
		return jid
	}
	pn, err := a.client.Store.LIDs.GetPNForLID(ctx, jid)
	if err != nil || pn.IsEmpty() {
		return jid
	}
	return pn
}
