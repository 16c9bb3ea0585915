package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	martbotv1 "github.com/quicksell-labs/martbot/gen/martbot/v1"
	"github.com/quicksell-labs/martbot/internal/ctl"
	"github.com/quicksell-labs/martbot/internal/session"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	socketPath := session.SocketPath(sessionName)
	c, err := ctl.New(socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for session %q: %v\n", sessionName, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch args[0] {
	case "status":
		cmdStatus(ctx, c, *jsonFlag)
	case "auth":
		cmdAuth(c)
	case "logout":
		cmdLogout(ctx, c)
	case "users":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: martbotctl users <list|optouts|optout>")
			os.Exit(1)
		}
		cmdUsers(ctx, c, args[1:], *jsonFlag)
	case "log":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: martbotctl log <jid> [limit]")
			os.Exit(1)
		}
		cmdLog(ctx, c, args[1:], *jsonFlag)
	case "stats":
		date := ""
		if len(args) >= 2 {
			date = args[1]
		}
		cmdStats(ctx, c, date, *jsonFlag)
	case "send":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: martbotctl send <jid> <message>")
			os.Exit(1)
		}
		cmdSend(ctx, c, args[1], strings.Join(args[2:], " "))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: martbotctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                     Show daemon status")
	fmt.Fprintln(os.Stderr, "  auth                       Pair with WhatsApp via QR code")
	fmt.Fprintln(os.Stderr, "  logout                     Log out and clear credentials")
	fmt.Fprintln(os.Stderr, "  users list                 List known users")
	fmt.Fprintln(os.Stderr, "  users optouts              List opted-out users")
	fmt.Fprintln(os.Stderr, "  users optout <jid> on|off  Set the opt-out flag")
	fmt.Fprintln(os.Stderr, "  log <jid> [limit]          Show message log for a user")
	fmt.Fprintln(os.Stderr, "  stats [YYYY-MM-DD]         Show daily traffic totals")
	fmt.Fprintln(os.Stderr, "  send <jid> <message>       Send a text message")
}

func cmdStatus(ctx context.Context, c *ctl.Client, jsonOut bool) {
	resp, err := c.Bot.GetStatus(ctx, &martbotv1.GetStatusRequest{})
	if err != nil {
		fatal(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Session:    %s\n", resp.Session)
	fmt.Printf("Status:     %s\n", resp.Status)
	if resp.PhoneNumber != "" {
		fmt.Printf("Phone:      %s\n", resp.PhoneNumber)
	}
	fmt.Printf("Uptime:     %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	fmt.Printf("Users:      %d\n", resp.UserCount)
	fmt.Printf("Sent today: %d / %d\n", resp.SentToday, resp.DailyLimit)
}

// cmdAuth streams auth events and renders each QR code in the terminal
// until authentication settles one way or the other. No timeout: QR
// scanning takes as long as it takes.
func cmdAuth(c *ctl.Client) {
	stream, err := c.Bot.StartAuth(context.Background(), &martbotv1.StartAuthRequest{})
	if err != nil {
		fatal(err)
	}
	for {
		evt, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fatal(err)
		}
		switch evt.EventType {
		case "qr_code":
			fmt.Println("\nScan this QR code with WhatsApp:")
			fmt.Println(renderQR(evt.QrCode))
		case "authenticated":
			fmt.Println("Authenticated.")
			return
		case "auth_failed", "timeout":
			fmt.Fprintf(os.Stderr, "auth failed: %s\n", evt.Message)
			os.Exit(1)
		default:
			if evt.Message != "" {
				fmt.Println(evt.Message)
			}
		}
	}
}

func cmdLogout(ctx context.Context, c *ctl.Client) {
	resp, err := c.Bot.Logout(ctx, &martbotv1.LogoutRequest{})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Success: %v - %s\n", resp.Success, resp.Message)
}

func cmdUsers(ctx context.Context, c *ctl.Client, args []string, jsonOut bool) {
	switch args[0] {
	case "list", "optouts":
		resp, err := c.User.ListUsers(ctx, &martbotv1.ListUsersRequest{
			OptedOutOnly: args[0] == "optouts",
		})
		if err != nil {
			fatal(err)
		}
		if jsonOut {
			outputJSON(resp)
			return
		}
		if len(resp.Users) == 0 {
			fmt.Println("No users found.")
			return
		}
		for _, u := range resp.Users {
			flags := ""
			if u.OptedOut {
				flags = " [opted out]"
			}
			fmt.Printf("%-28s %-16s score=%-3d today=%d/%s%s\n",
				u.Jid, u.DisplayName, u.EngagementScore, u.DailyCount, u.LastMessageDate, flags)
		}
	case "optout":
		if len(args) < 3 || (args[2] != "on" && args[2] != "off") {
			fmt.Fprintln(os.Stderr, "usage: martbotctl users optout <jid> on|off")
			os.Exit(1)
		}
		resp, err := c.User.SetOptOut(ctx, &martbotv1.SetOptOutRequest{
			Jid:      args[1],
			OptedOut: args[2] == "on",
		})
		if err != nil {
			fatal(err)
		}
		if jsonOut {
			outputJSON(resp)
			return
		}
		fmt.Printf("%s opted out: %v\n", resp.User.Jid, resp.User.OptedOut)
	default:
		fmt.Fprintf(os.Stderr, "unknown users subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func cmdLog(ctx context.Context, c *ctl.Client, args []string, jsonOut bool) {
	limit := 0
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad limit %q\n", args[1])
			os.Exit(1)
		}
		limit = n
	}
	resp, err := c.Message.ListLog(ctx, &martbotv1.ListLogRequest{Jid: args[0], Limit: int32(limit)})
	if err != nil {
		fatal(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	for _, e := range resp.Entries {
		ts := time.UnixMilli(e.CreatedAtMs).Format("2006-01-02 15:04:05")
		arrow := "<-"
		if e.Direction == "out" {
			arrow = "->"
		}
		note := ""
		if e.WasThrottled {
			note = " (throttled)"
		}
		fmt.Printf("%s %s %s%s\n", ts, arrow, e.Body, note)
	}
}

func cmdStats(ctx context.Context, c *ctl.Client, date string, jsonOut bool) {
	resp, err := c.Message.GetStats(ctx, &martbotv1.GetStatsRequest{Date: date})
	if err != nil {
		fatal(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Date:      %s\n", resp.Date)
	fmt.Printf("Inbound:   %d\n", resp.Inbound)
	fmt.Printf("Outbound:  %d\n", resp.Outbound)
	fmt.Printf("Throttled: %d\n", resp.Throttled)
	fmt.Printf("Remaining: %d\n", resp.RemainingToday)
}

func cmdSend(ctx context.Context, c *ctl.Client, jid, body string) {
	resp, err := c.Message.SendText(ctx, &martbotv1.SendTextRequest{Jid: jid, Body: body})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Sent. Message ID: %s\n", resp.MessageId)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
