package api

import (
	"context"

	martbotv1 "github.com/quicksell-labs/martbot/gen/martbot/v1"
	"github.com/quicksell-labs/martbot/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// UserService implements the UserService gRPC service: per-contact
// state inspection and the administrative opt-out override.
type UserService struct {
	martbotv1.UnimplementedUserServiceServer

	db *store.DB
}

// NewUserService creates a new user service backed by the store.
func NewUserService(db *store.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers(_ context.Context, req *martbotv1.ListUsersRequest) (*martbotv1.ListUsersResponse, error) {
	limit := 50
	if req.Limit > 0 {
		limit = int(req.Limit)
	}

	users, err := s.db.ListUsers(req.OptedOutOnly, limit)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list users: %v", err)
	}
	total, err := s.db.UserCount()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "count users: %v", err)
	}

	resp := &martbotv1.ListUsersResponse{Total: total}
	for _, u := range users {
		resp.Users = append(resp.Users, userToProto(&u))
	}
	return resp, nil
}

// SetOptOut flips the opt-out flag for a user. Unlike the inbound
// keyword path this may also clear the flag; that is an operator
// decision and the only way back in for a user who opted out.
func (s *UserService) SetOptOut(_ context.Context, req *martbotv1.SetOptOutRequest) (*martbotv1.SetOptOutResponse, error) {
	u, err := s.db.GetUserByJID(req.Jid)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "no user with JID %s", req.Jid)
	}

	if err := s.db.SetOptedOut(u.ID, req.OptedOut); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "set opt-out: %v", err)
	}
	u, err = s.db.GetUser(u.ID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "reload user: %v", err)
	}
	return &martbotv1.SetOptOutResponse{User: userToProto(u)}, nil
}

func userToProto(u *store.User) *martbotv1.User {
	return &martbotv1.User{
		Id:                u.ID,
		Jid:               u.JID,
		DisplayName:       u.DisplayName,
		DailyCount:        int32(u.DailyCount),
		LastMessageDate:   u.LastMessageDate,
		EngagementScore:   int32(u.EngagementScore),
		OptedOut:          u.OptedOut,
		ReminderCount:     int32(u.ReminderCount),
		LastInteractionMs: u.LastInteraction,
	}
}
