// Package ctl wraps gRPC connections to a running martbotd.
package ctl

import (
	"fmt"

	martbotv1 "github.com/quicksell-labs/martbot/gen/martbot/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps gRPC connections to the daemon.
type Client struct {
	conn    *grpc.ClientConn
	Bot     martbotv1.BotServiceClient
	User    martbotv1.UserServiceClient
	Message martbotv1.MessageServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:    conn,
		Bot:     martbotv1.NewBotServiceClient(conn),
		User:    martbotv1.NewUserServiceClient(conn),
		Message: martbotv1.NewMessageServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
