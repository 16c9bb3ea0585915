package martbotv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	BotService_GetStatus_FullMethodName = "/martbot.v1.BotService/GetStatus"
	BotService_StartAuth_FullMethodName = "/martbot.v1.BotService/StartAuth"
	BotService_Logout_FullMethodName    = "/martbot.v1.BotService/Logout"

	UserService_ListUsers_FullMethodName = "/martbot.v1.UserService/ListUsers"
	UserService_SetOptOut_FullMethodName = "/martbot.v1.UserService/SetOptOut"

	MessageService_ListLog_FullMethodName  = "/martbot.v1.MessageService/ListLog"
	MessageService_GetStats_FullMethodName = "/martbot.v1.MessageService/GetStats"
	MessageService_SendText_FullMethodName = "/martbot.v1.MessageService/SendText"
)

// BotServiceClient is the client API for BotService.
type BotServiceClient interface {
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	StartAuth(ctx context.Context, in *StartAuthRequest, opts ...grpc.CallOption) (BotService_StartAuthClient, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
}

type botServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBotServiceClient(cc grpc.ClientConnInterface) BotServiceClient {
	return &botServiceClient{cc}
}

func (c *botServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	out := new(GetStatusResponse)
	if err := c.cc.Invoke(ctx, BotService_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type BotService_StartAuthClient = grpc.ServerStreamingClient[AuthEvent]

func (c *botServiceClient) StartAuth(ctx context.Context, in *StartAuthRequest, opts ...grpc.CallOption) (BotService_StartAuthClient, error) {
	stream, err := c.cc.NewStream(ctx, &BotService_ServiceDesc.Streams[0], BotService_StartAuth_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StartAuthRequest, AuthEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *botServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	out := new(LogoutResponse)
	if err := c.cc.Invoke(ctx, BotService_Logout_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BotServiceServer is the server API for BotService.
type BotServiceServer interface {
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	StartAuth(*StartAuthRequest, BotService_StartAuthServer) error
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
}

type BotService_StartAuthServer = grpc.ServerStreamingServer[AuthEvent]

// UnimplementedBotServiceServer can be embedded for forward compatibility.
type UnimplementedBotServiceServer struct{}

func (UnimplementedBotServiceServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedBotServiceServer) StartAuth(*StartAuthRequest, BotService_StartAuthServer) error {
	return status.Errorf(codes.Unimplemented, "method StartAuth not implemented")
}
func (UnimplementedBotServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}

func RegisterBotServiceServer(s grpc.ServiceRegistrar, srv BotServiceServer) {
	s.RegisterService(&BotService_ServiceDesc, srv)
}

func _BotService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BotServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BotService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BotServiceServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BotService_StartAuth_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StartAuthRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BotServiceServer).StartAuth(m, &grpc.GenericServerStream[StartAuthRequest, AuthEvent]{ServerStream: stream})
}

func _BotService_Logout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LogoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BotServiceServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BotService_Logout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BotServiceServer).Logout(ctx, req.(*LogoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var BotService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "martbot.v1.BotService",
	HandlerType: (*BotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStatus",
			Handler:    _BotService_GetStatus_Handler,
		},
		{
			MethodName: "Logout",
			Handler:    _BotService_Logout_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StartAuth",
			Handler:       _BotService_StartAuth_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "martbot/v1/martbot.proto",
}

// UserServiceClient is the client API for UserService.
type UserServiceClient interface {
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	SetOptOut(ctx context.Context, in *SetOptOutRequest, opts ...grpc.CallOption) (*SetOptOutResponse, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc}
}

func (c *userServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	out := new(ListUsersResponse)
	if err := c.cc.Invoke(ctx, UserService_ListUsers_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) SetOptOut(ctx context.Context, in *SetOptOutRequest, opts ...grpc.CallOption) (*SetOptOutResponse, error) {
	out := new(SetOptOutResponse)
	if err := c.cc.Invoke(ctx, UserService_SetOptOut_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserServiceServer is the server API for UserService.
type UserServiceServer interface {
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	SetOptOut(context.Context, *SetOptOutRequest) (*SetOptOutResponse, error)
}

// UnimplementedUserServiceServer can be embedded for forward compatibility.
type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedUserServiceServer) SetOptOut(context.Context, *SetOptOutRequest) (*SetOptOutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetOptOut not implemented")
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

func _UserService_ListUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserService_ListUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).ListUsers(ctx, req.(*ListUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_SetOptOut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetOptOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).SetOptOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserService_SetOptOut_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).SetOptOut(ctx, req.(*SetOptOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "martbot.v1.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListUsers",
			Handler:    _UserService_ListUsers_Handler,
		},
		{
			MethodName: "SetOptOut",
			Handler:    _UserService_SetOptOut_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "martbot/v1/martbot.proto",
}

// MessageServiceClient is the client API for MessageService.
type MessageServiceClient interface {
	ListLog(ctx context.Context, in *ListLogRequest, opts ...grpc.CallOption) (*ListLogResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*SendTextResponse, error)
}

type messageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessageServiceClient(cc grpc.ClientConnInterface) MessageServiceClient {
	return &messageServiceClient{cc}
}

func (c *messageServiceClient) ListLog(ctx context.Context, in *ListLogRequest, opts ...grpc.CallOption) (*ListLogResponse, error) {
	out := new(ListLogResponse)
	if err := c.cc.Invoke(ctx, MessageService_ListLog_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	if err := c.cc.Invoke(ctx, MessageService_GetStats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messageServiceClient) SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*SendTextResponse, error) {
	out := new(SendTextResponse)
	if err := c.cc.Invoke(ctx, MessageService_SendText_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MessageServiceServer is the server API for MessageService.
type MessageServiceServer interface {
	ListLog(context.Context, *ListLogRequest) (*ListLogResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	SendText(context.Context, *SendTextRequest) (*SendTextResponse, error)
}

// UnimplementedMessageServiceServer can be embedded for forward compatibility.
type UnimplementedMessageServiceServer struct{}

func (UnimplementedMessageServiceServer) ListLog(context.Context, *ListLogRequest) (*ListLogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLog not implemented")
}
func (UnimplementedMessageServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedMessageServiceServer) SendText(context.Context, *SendTextRequest) (*SendTextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendText not implemented")
}

func RegisterMessageServiceServer(s grpc.ServiceRegistrar, srv MessageServiceServer) {
	s.RegisterService(&MessageService_ServiceDesc, srv)
}

func _MessageService_ListLog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).ListLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MessageService_ListLog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).ListLog(ctx, req.(*ListLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MessageService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessageService_SendText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessageServiceServer).SendText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MessageService_SendText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MessageServiceServer).SendText(ctx, req.(*SendTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MessageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "martbot.v1.MessageService",
	HandlerType: (*MessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListLog",
			Handler:    _MessageService_ListLog_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _MessageService_GetStats_Handler,
		},
		{
			MethodName: "SendText",
			Handler:    _MessageService_SendText_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "martbot/v1/martbot.proto",
}
