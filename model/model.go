/*
Package model provides the domain-specific data models for this chat.
*/
package model

import (
	"fmt"
	"strings"

	chat "git.sr.ht/~gioverse/swipechat"
)

// Sender identifies who authored a message.
type Sender string

const (
	// User is the local user operating the interface.
	User Sender = "user"
	// Other is the remote participant.
	Other Sender = "other"
)

// ParseSender converts a textual tag into a Sender.
func ParseSender(s string) (Sender, error) {
	switch sender := Sender(strings.ToLower(strings.TrimSpace(s))); sender {
	case User, Other:
		return sender, nil
	default:
		return "", fmt.Errorf("unknown sender %q", s)
	}
}

// Local reports whether the sender is the local user.
func (s Sender) Local() bool {
	return s == User
}

// Label names the sender above a quoted message.
func (s Sender) Label() string {
	if s.Local() {
		return "You"
	}
	return "Other"
}

// ReplyLabel names the sender in the reply preview ("Replying to ...").
func (s Sender) ReplyLabel() string {
	if s.Local() {
		return "Yourself"
	}
	return "Other"
}

// Quote is a snapshot of a message taken when it was replied to. It does not
// follow later changes to the original.
type Quote struct {
	Serial string
	Text   string
	Sender Sender
}

// Message represents a chat message.
type Message struct {
	Serial  string
	Text    string
	Sender  Sender
	ReplyTo *Quote
}

// ID returns the unique identifier for this message.
func (m Message) ID() chat.RowID {
	return chat.RowID(m.Serial)
}

// Quote snapshots the message for use as a reply target.
func (m Message) Quote() Quote {
	return Quote{
		Serial: m.Serial,
		Text:   m.Text,
		Sender: m.Sender,
	}
}

// Blank reports whether text has no content worth sending.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}
