package api

import (
	"context"
	"time"

	martbotv1 "github.com/quicksell-labs/martbot/gen/martbot/v1"
	"github.com/quicksell-labs/martbot/internal/gate"
	"github.com/quicksell-labs/martbot/internal/store"
	"github.com/quicksell-labs/martbot/internal/wa"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// MessageService implements the MessageService gRPC service: log
// inspection, traffic stats, and operator-initiated sends.
type MessageService struct {
	martbotv1.UnimplementedMessageServiceServer

	db      *store.DB
	adapter *wa.Adapter
	rate    *gate.RateWindow
	breaker *gate.Breaker
	engage  *gate.Engagement
	loc     *time.Location
}

// NewMessageService creates a new message service.
func NewMessageService(db *store.DB, adapter *wa.Adapter, loc *time.Location) *MessageService {
	return &MessageService{
		db:      db,
		adapter: adapter,
		rate:    gate.NewRateWindow(db, loc),
		breaker: gate.NewBreaker(db, loc),
		engage:  gate.NewEngagement(db),
		loc:     loc,
	}
}

func (s *MessageService) ListLog(_ context.Context, req *martbotv1.ListLogRequest) (*martbotv1.ListLogResponse, error) {
	entries, err := s.db.ListLogByJID(req.Jid, int(req.Limit))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list log: %v", err)
	}

	resp := &martbotv1.ListLogResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &martbotv1.LogEntry{
			Id:              e.ID,
			Jid:             e.JID,
			Direction:       e.Direction,
			Body:            e.Body,
			MediaType:       e.MediaType,
			ResponseDelayMs: e.ResponseDelayMs,
			WasThrottled:    e.WasThrottled,
			CreatedAtMs:     e.CreatedAt,
		})
	}
	return resp, nil
}

func (s *MessageService) GetStats(_ context.Context, req *martbotv1.GetStatsRequest) (*martbotv1.GetStatsResponse, error) {
	now := time.Now().In(s.loc)
	day := gate.Midnight(now, s.loc)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
		if err != nil {
			return nil, grpcstatus.Errorf(codes.InvalidArgument, "bad date %q: %v", req.Date, err)
		}
		day = parsed
	}

	totals, err := s.db.TotalsBetween(day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "stats: %v", err)
	}

	remaining := int64(0)
	if r := int64(gate.GlobalDailyLimit) - totals.Outbound; r > 0 {
		remaining = r
	}
	return &martbotv1.GetStatsResponse{
		Date:           gate.DateKey(day, s.loc),
		Inbound:        totals.Inbound,
		Outbound:       totals.Outbound,
		Throttled:      totals.Throttled,
		RemainingToday: remaining,
	}, nil
}

// SendText is the operator-initiated send. It honors the same opt-out
// and global ceiling as the pipeline, consumes the user's daily budget,
// and applies the proactive-contact engagement penalty since the user
// did not ask for this message.
func (s *MessageService) SendText(ctx context.Context, req *martbotv1.SendTextRequest) (*martbotv1.SendTextResponse, error) {
	if req.Jid == "" || req.Body == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "jid and body are required")
	}

	u, err := s.db.GetUserByJID(req.Jid)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get user: %v", err)
	}
	if u != nil && u.OptedOut {
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "user has opted out")
	}

	now := time.Now().In(s.loc)
	allowed, err := s.breaker.Allow(now)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "breaker: %v", err)
	}
	if !allowed {
		return nil, grpcstatus.Errorf(codes.ResourceExhausted, "global daily send limit reached")
	}

	msgID, err := s.adapter.SendText(ctx, req.Jid, req.Body)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "send: %v", err)
	}

	userID := ""
	if u != nil {
		userID = u.ID
		if err := s.rate.Advance(u.ID, now); err != nil {
			return nil, grpcstatus.Errorf(codes.Internal, "advance rate: %v", err)
		}
		if err := s.engage.Adjust(u.ID, false); err != nil {
			return nil, grpcstatus.Errorf(codes.Internal, "adjust engagement: %v", err)
		}
	}
	if err := s.db.AppendLog(&store.LogEntry{
		UserID:    userID,
		JID:       req.Jid,
		Direction: store.DirectionOut,
		Body:      req.Body,
		CreatedAt: now.UnixMilli(),
	}); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "log send: %v", err)
	}

	return &martbotv1.SendTextResponse{MessageId: msgID}, nil
}
