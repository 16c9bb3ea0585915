package pipeline

import "strings"

const optOutConfirmation = "You've been unsubscribed and won't receive any more automated messages from me. Message us anytime if you change your mind."

// stopKeywords are matched as case-insensitive substrings so that
// "please STOP messaging me" works as well as a bare "stop".
var stopKeywords = []string{
	"stop bot",
	"unsubscribe",
	"opt out",
	"optout",
	"stop",
}

// IsStopRequest reports whether the message is an opt-out request.
func IsStopRequest(body string) bool {
	lowered := strings.ToLower(body)
	for _, kw := range stopKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
