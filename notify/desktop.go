package notify

import (
	"github.com/gen2brain/beeep"
)

// SystemDesktop shows notifications through the operating system's
// notification service.
type SystemDesktop struct {
	// Icon is an optional path to an image shown with the notification
	Icon string
}

func (d SystemDesktop) Show(title, body string) error {
	return beeep.Notify(title, body, d.Icon)
}
