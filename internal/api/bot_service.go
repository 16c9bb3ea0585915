package api

import (
	"context"
	"time"

	martbotv1 "github.com/quicksell-labs/martbot/gen/martbot/v1"
	"github.com/quicksell-labs/martbot/internal/gate"
	"github.com/quicksell-labs/martbot/internal/status"
	"github.com/quicksell-labs/martbot/internal/store"
	"github.com/quicksell-labs/martbot/internal/wa"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// BotService implements the BotService gRPC service: daemon status and
// the WhatsApp auth lifecycle.
type BotService struct {
	martbotv1.UnimplementedBotServiceServer

	sessionName string
	startedAt   time.Time
	machine     *status.Machine
	adapter     *wa.Adapter
	db          *store.DB
	breaker     *gate.Breaker
}

// NewBotService creates a new bot service.
func NewBotService(sessionName string, machine *status.Machine, adapter *wa.Adapter, db *store.DB, breaker *gate.Breaker) *BotService {
	return &BotService{
		sessionName: sessionName,
		startedAt:   time.Now(),
		machine:     machine,
		adapter:     adapter,
		db:          db,
		breaker:     breaker,
	}
}

func (s *BotService) GetStatus(_ context.Context, _ *martbotv1.GetStatusRequest) (*martbotv1.GetStatusResponse, error) {
	resp := &martbotv1.GetStatusResponse{
		Session:    s.sessionName,
		Status:     string(s.machine.Current()),
		UptimeMs:   time.Since(s.startedAt).Milliseconds(),
		DailyLimit: gate.GlobalDailyLimit,
	}

	if s.adapter != nil {
		resp.PhoneNumber = s.adapter.PhoneNumber()
	}
	if count, err := s.db.UserCount(); err == nil {
		resp.UserCount = count
	}
	if sent, err := s.breaker.SentToday(time.Now()); err == nil {
		resp.SentToday = sent
	}

	return resp, nil
}

func (s *BotService) StartAuth(_ *martbotv1.StartAuthRequest, stream martbotv1.BotService_StartAuthServer) error {
	if s.adapter == nil {
		return grpcstatus.Errorf(codes.Unavailable, "adapter not initialized")
	}

	authCh, err := s.adapter.StartQRAuth(stream.Context())
	if err != nil {
		return grpcstatus.Errorf(codes.Internal, "start auth: %v", err)
	}

	for evt := range authCh {
		if err := stream.Send(&martbotv1.AuthEvent{
			EventType: string(evt.Type),
			QrCode:    evt.QRCode,
			Message:   evt.Message,
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *BotService) Logout(ctx context.Context, _ *martbotv1.LogoutRequest) (*martbotv1.LogoutResponse, error) {
	if s.adapter == nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "adapter not initialized")
	}
	if err := s.adapter.Logout(ctx); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "logout: %v", err)
	}
	return &martbotv1.LogoutResponse{Success: true, Message: "logged out"}, nil
}
