package material

import (
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	// ReplyIcon is revealed behind a row as it is swiped.
	ReplyIcon = mustIcon(icons.ContentReply)
	// SendIcon labels the composer's send button.
	SendIcon = mustIcon(icons.ContentSend)
	// CloseIcon and BackIcon both dismiss the reply preview.
	CloseIcon = mustIcon(icons.NavigationClose)
	BackIcon  = mustIcon(icons.HardwareKeyboardArrowLeft)
)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return icon
}
