package widget

import (
	"gioui.org/widget"
)

// Composer holds the state of the message input bar.
type Composer struct {
	// Editor contains the edit buffer for composing messages.
	Editor widget.Editor
	// Send holds click state for the send button.
	Send widget.Clickable
}

// Submitted reports whether the user asked to send, either with the send
// button or by pressing enter in the editor.
func (c *Composer) Submitted() bool {
	submitted := c.Send.Clicked()
	for _, e := range c.Editor.Events() {
		if _, ok := e.(widget.SubmitEvent); ok {
			submitted = true
		}
	}
	return submitted
}

// Text returns the contents of the edit buffer.
func (c *Composer) Text() string {
	return c.Editor.Text()
}

// SetText replaces the contents of the edit buffer.
func (c *Composer) SetText(s string) {
	c.Editor.SetText(s)
}
