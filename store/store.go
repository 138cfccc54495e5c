/*
Package store holds the conversation: an ordered, append-only sequence of
messages living in memory for the lifetime of the process.
*/
package store

import (
	"fmt"
	"sync"
	"time"

	"git.sr.ht/~gioverse/swipechat/model"
)

// Store is the conversation's source of truth. Messages keep their insertion
// order and are never modified or removed once added.
type Store struct {
	sync.Mutex
	messages []model.Message
	// serials maps a serial to its index within messages.
	serials map[string]int
	ids     *IDs
}

// New constructs a store holding the seed messages in order. Seed serials
// must be unique. A nil ids uses a generator backed by crypto/rand.
func New(seed []model.Message, ids *IDs) (*Store, error) {
	if ids == nil {
		ids = NewIDs(nil)
	}
	s := &Store{
		messages: make([]model.Message, 0, len(seed)),
		serials:  make(map[string]int, len(seed)),
		ids:      ids,
	}
	for _, m := range seed {
		if _, ok := s.serials[m.Serial]; ok {
			return nil, fmt.Errorf("duplicate message id %q", m.Serial)
		}
		s.serials[m.Serial] = len(s.messages)
		s.messages = append(s.messages, m)
	}
	return s, nil
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.messages)
}

// At returns the message at index, which must be within [0, Len()).
func (s *Store) At(index int) model.Message {
	s.Lock()
	defer s.Unlock()
	return s.messages[index]
}

// Last returns the most recent message, if any.
func (s *Store) Last() (model.Message, bool) {
	s.Lock()
	defer s.Unlock()
	if len(s.messages) == 0 {
		return model.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Lookup finds a message by serial.
func (s *Store) Lookup(serial string) (model.Message, bool) {
	s.Lock()
	defer s.Unlock()
	idx, ok := s.serials[serial]
	if !ok {
		return model.Message{}, false
	}
	return s.messages[idx], true
}

// Messages returns a copy of the conversation.
func (s *Store) Messages() []model.Message {
	s.Lock()
	defer s.Unlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Append adds a new message to the end of the conversation with a freshly
// generated serial, and returns it. The text is stored as given; callers are
// responsible for rejecting blank messages.
func (s *Store) Append(now time.Time, sender model.Sender, text string, replyTo *model.Quote) (model.Message, error) {
	serial, err := s.ids.Next(now)
	if err != nil {
		return model.Message{}, err
	}
	s.Lock()
	defer s.Unlock()
	if _, ok := s.serials[serial]; ok {
		return model.Message{}, fmt.Errorf("duplicate message id %q", serial)
	}
	msg := model.Message{
		Serial: serial,
		Text:   text,
		Sender: sender,
	}
	if replyTo != nil {
		q := *replyTo
		msg.ReplyTo = &q
	}
	s.serials[serial] = len(s.messages)
	s.messages = append(s.messages, msg)
	return msg, nil
}
