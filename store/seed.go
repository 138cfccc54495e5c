package store

import (
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"git.sr.ht/~gioverse/swipechat/model"
	lorem "github.com/drhodes/golorem"
	"gopkg.in/yaml.v3"
)

// defaultSeed is the conversation shown when no seed file is configured.
//
//go:embed seed.yaml
var defaultSeed string

// seedFile is the on-disk representation of a seed transcript.
type seedFile struct {
	Messages []seedMessage `yaml:"messages"`
}

type seedMessage struct {
	ID     string `yaml:"id"`
	Sender string `yaml:"sender"`
	Text   string `yaml:"text"`
}

// DefaultSeed returns the built-in sample conversation.
func DefaultSeed() []model.Message {
	msgs, err := DecodeSeed(strings.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Errorf("decoding embedded seed: %w", err))
	}
	return msgs
}

// DecodeSeed reads a YAML seed transcript. Every message needs an id, a
// known sender and non-blank text.
func DecodeSeed(r io.Reader) ([]model.Message, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	out := make([]model.Message, 0, len(f.Messages))
	for i, m := range f.Messages {
		if m.ID == "" {
			return nil, fmt.Errorf("seed message %d: missing id", i)
		}
		sender, err := model.ParseSender(m.Sender)
		if err != nil {
			return nil, fmt.Errorf("seed message %q: %w", m.ID, err)
		}
		if model.Blank(m.Text) {
			return nil, fmt.Errorf("seed message %q: blank text", m.ID)
		}
		out = append(out, model.Message{
			Serial: m.ID,
			Sender: sender,
			Text:   m.Text,
		})
	}
	return out, nil
}

// Filler generates n lorem ipsum messages alternating between senders,
// useful for exercising scrolling with a long history. Serials are
// prefixed with "filler-" so that they cannot collide with seed ids.
func Filler(n int, rng *rand.Rand) []model.Message {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	out := make([]model.Message, 0, n)
	for i := 0; i < n; i++ {
		sender := model.Other
		if rng.Intn(2) == 0 {
			sender = model.User
		}
		out = append(out, model.Message{
			Serial: fmt.Sprintf("filler-%04d", i),
			Sender: sender,
			Text:   lorem.Sentence(2, 12),
		})
	}
	return out
}

// LoadSeed returns the conversation to start with: the transcript at path,
// or the built-in one if path is empty, preceded by filler generated
// messages of history.
func LoadSeed(path string, filler int, rng *rand.Rand) ([]model.Message, error) {
	seed := DefaultSeed()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening seed: %w", err)
		}
		defer f.Close()
		if seed, err = DecodeSeed(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if filler > 0 {
		seed = append(Filler(filler, rng), seed...)
	}
	return seed, nil
}
