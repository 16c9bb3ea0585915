// Package martbotv1 defines the control API exchanged between martbotd
// and martbotctl over the session's Unix domain socket.
//
// The messages are hand-maintained in the shape protoc-gen-go emits for
// proto3 so the module builds without a protoc step; the gRPC runtime
// derives descriptors from the struct tags.
package martbotv1

import "fmt"

type GetStatusRequest struct{}

func (x *GetStatusRequest) Reset()         { *x = GetStatusRequest{} }
func (x *GetStatusRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*GetStatusRequest) ProtoMessage()    {}

type GetStatusResponse struct {
	Session     string `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	Status      string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	PhoneNumber string `protobuf:"bytes,3,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	UptimeMs    int64  `protobuf:"varint,4,opt,name=uptime_ms,json=uptimeMs,proto3" json:"uptime_ms,omitempty"`
	UserCount   int64  `protobuf:"varint,5,opt,name=user_count,json=userCount,proto3" json:"user_count,omitempty"`
	SentToday   int64  `protobuf:"varint,6,opt,name=sent_today,json=sentToday,proto3" json:"sent_today,omitempty"`
	DailyLimit  int64  `protobuf:"varint,7,opt,name=daily_limit,json=dailyLimit,proto3" json:"daily_limit,omitempty"`
}

func (x *GetStatusResponse) Reset()         { *x = GetStatusResponse{} }
func (x *GetStatusResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*GetStatusResponse) ProtoMessage()    {}

type StartAuthRequest struct{}

func (x *StartAuthRequest) Reset()         { *x = StartAuthRequest{} }
func (x *StartAuthRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*StartAuthRequest) ProtoMessage()    {}

type AuthEvent struct {
	EventType string `protobuf:"bytes,1,opt,name=event_type,json=eventType,proto3" json:"event_type,omitempty"`
	QrCode    string `protobuf:"bytes,2,opt,name=qr_code,json=qrCode,proto3" json:"qr_code,omitempty"`
	Message   string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *AuthEvent) Reset()         { *x = AuthEvent{} }
func (x *AuthEvent) String() string { return fmt.Sprintf("%+v", *x) }
func (*AuthEvent) ProtoMessage()    {}

type LogoutRequest struct{}

func (x *LogoutRequest) Reset()         { *x = LogoutRequest{} }
func (x *LogoutRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*LogoutRequest) ProtoMessage()    {}

type LogoutResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *LogoutResponse) Reset()         { *x = LogoutResponse{} }
func (x *LogoutResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*LogoutResponse) ProtoMessage()    {}

type User struct {
	Id                string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Jid               string `protobuf:"bytes,2,opt,name=jid,proto3" json:"jid,omitempty"`
	DisplayName       string `protobuf:"bytes,3,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	DailyCount        int32  `protobuf:"varint,4,opt,name=daily_count,json=dailyCount,proto3" json:"daily_count,omitempty"`
	LastMessageDate   string `protobuf:"bytes,5,opt,name=last_message_date,json=lastMessageDate,proto3" json:"last_message_date,omitempty"`
	EngagementScore   int32  `protobuf:"varint,6,opt,name=engagement_score,json=engagementScore,proto3" json:"engagement_score,omitempty"`
	OptedOut          bool   `protobuf:"varint,7,opt,name=opted_out,json=optedOut,proto3" json:"opted_out,omitempty"`
	ReminderCount     int32  `protobuf:"varint,8,opt,name=reminder_count,json=reminderCount,proto3" json:"reminder_count,omitempty"`
	LastInteractionMs int64  `protobuf:"varint,9,opt,name=last_interaction_ms,json=lastInteractionMs,proto3" json:"last_interaction_ms,omitempty"`
}

func (x *User) Reset()         { *x = User{} }
func (x *User) String() string { return fmt.Sprintf("%+v", *x) }
func (*User) ProtoMessage()    {}

type ListUsersRequest struct {
	OptedOutOnly bool  `protobuf:"varint,1,opt,name=opted_out_only,json=optedOutOnly,proto3" json:"opted_out_only,omitempty"`
	Limit        int32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *ListUsersRequest) Reset()         { *x = ListUsersRequest{} }
func (x *ListUsersRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*ListUsersRequest) ProtoMessage()    {}

type ListUsersResponse struct {
	Users []*User `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	Total int64   `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (x *ListUsersResponse) Reset()         { *x = ListUsersResponse{} }
func (x *ListUsersResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*ListUsersResponse) ProtoMessage()    {}

type SetOptOutRequest struct {
	Jid      string `protobuf:"bytes,1,opt,name=jid,proto3" json:"jid,omitempty"`
	OptedOut bool   `protobuf:"varint,2,opt,name=opted_out,json=optedOut,proto3" json:"opted_out,omitempty"`
}

func (x *SetOptOutRequest) Reset()         { *x = SetOptOutRequest{} }
func (x *SetOptOutRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*SetOptOutRequest) ProtoMessage()    {}

type SetOptOutResponse struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (x *SetOptOutResponse) Reset()         { *x = SetOptOutResponse{} }
func (x *SetOptOutResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*SetOptOutResponse) ProtoMessage()    {}

type ListLogRequest struct {
	Jid   string `protobuf:"bytes,1,opt,name=jid,proto3" json:"jid,omitempty"`
	Limit int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *ListLogRequest) Reset()         { *x = ListLogRequest{} }
func (x *ListLogRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*ListLogRequest) ProtoMessage()    {}

type LogEntry struct {
	Id              int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Jid             string `protobuf:"bytes,2,opt,name=jid,proto3" json:"jid,omitempty"`
	Direction       string `protobuf:"bytes,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Body            string `protobuf:"bytes,4,opt,name=body,proto3" json:"body,omitempty"`
	MediaType       string `protobuf:"bytes,5,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
	ResponseDelayMs int64  `protobuf:"varint,6,opt,name=response_delay_ms,json=responseDelayMs,proto3" json:"response_delay_ms,omitempty"`
	WasThrottled    bool   `protobuf:"varint,7,opt,name=was_throttled,json=wasThrottled,proto3" json:"was_throttled,omitempty"`
	CreatedAtMs     int64  `protobuf:"varint,8,opt,name=created_at_ms,json=createdAtMs,proto3" json:"created_at_ms,omitempty"`
}

func (x *LogEntry) Reset()         { *x = LogEntry{} }
func (x *LogEntry) String() string { return fmt.Sprintf("%+v", *x) }
func (*LogEntry) ProtoMessage()    {}

type ListLogResponse struct {
	Entries []*LogEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (x *ListLogResponse) Reset()         { *x = ListLogResponse{} }
func (x *ListLogResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*ListLogResponse) ProtoMessage()    {}

type GetStatsRequest struct {
	// Date is YYYY-MM-DD in the daemon's zone; empty means today.
	Date string `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
}

func (x *GetStatsRequest) Reset()         { *x = GetStatsRequest{} }
func (x *GetStatsRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*GetStatsRequest) ProtoMessage()    {}

type GetStatsResponse struct {
	Date           string `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Inbound        int64  `protobuf:"varint,2,opt,name=inbound,proto3" json:"inbound,omitempty"`
	Outbound       int64  `protobuf:"varint,3,opt,name=outbound,proto3" json:"outbound,omitempty"`
	Throttled      int64  `protobuf:"varint,4,opt,name=throttled,proto3" json:"throttled,omitempty"`
	RemainingToday int64  `protobuf:"varint,5,opt,name=remaining_today,json=remainingToday,proto3" json:"remaining_today,omitempty"`
}

func (x *GetStatsResponse) Reset()         { *x = GetStatsResponse{} }
func (x *GetStatsResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*GetStatsResponse) ProtoMessage()    {}

type SendTextRequest struct {
	Jid  string `protobuf:"bytes,1,opt,name=jid,proto3" json:"jid,omitempty"`
	Body string `protobuf:"bytes,2,opt,name=body,proto3" json:"body,omitempty"`
}

func (x *SendTextRequest) Reset()         { *x = SendTextRequest{} }
func (x *SendTextRequest) String() string { return fmt.Sprintf("%+v", *x) }
func (*SendTextRequest) ProtoMessage()    {}

type SendTextResponse struct {
	MessageId string `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
}

func (x *SendTextResponse) Reset()         { *x = SendTextResponse{} }
func (x *SendTextResponse) String() string { return fmt.Sprintf("%+v", *x) }
func (*SendTextResponse) ProtoMessage()    {}
