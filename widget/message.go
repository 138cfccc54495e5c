package widget

import (
	"gioui.org/x/richtext"
)

// Message holds the state necessary to facilitate user
// interactions with message text across frames.
type Message struct {
	richtext.InteractiveText
}
