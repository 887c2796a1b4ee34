package cli

import (
	"fmt"
	"time"
)

// notifyPrintFn is a test seam for notification output.
var notifyPrintFn = fmt.Println

// termNotifier renders notifications as prompt interjections. There is no
// screen real estate to expire them from, so the duration is ignored.
type termNotifier struct{}

func newTermNotifier() *termNotifier {
	return &termNotifier{}
}

func (n *termNotifier) Notify(title, description string, duration time.Duration, isError bool) {
	prefix := "♥"
	if isError {
		prefix = "!"
	}
	if description != "" {
		notifyPrintFn(fmt.Sprintf("\n[%s] %s: %s", prefix, title, description))
		return
	}
	notifyPrintFn(fmt.Sprintf("\n[%s] %s", prefix, title))
}
