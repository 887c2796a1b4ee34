// Package notify turns change events authored by the partner into transient
// user-facing notifications.
package notify

import (
	"fmt"
	"time"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

// DefaultDuration is how long a notification stays on screen.
const DefaultDuration = 4 * time.Second

// Notifier is the notification surface. Fire and forget.
type Notifier interface {
	Notify(title, description string, duration time.Duration, isError bool)
}

var titles = map[string]string{
	common.TableMoods:   "%s shared a mood 💕",
	common.TablePhotos:  "%s added a photo 📸",
	common.TableLetters: "%s sent you a letter 💌",
	common.TableAnswers: "%s answered today's question ✨",
}

// Bridge raises one notification per partner insert. Updates, deletes, and
// the local identity's own writes are absorbed silently; those still drive
// the list refetch elsewhere. No deduplication: a burst of partner inserts
// raises one notification each.
type Bridge struct {
	local    string
	notifier Notifier
}

func NewBridge(localIdentity string, notifier Notifier) *Bridge {
	return &Bridge{local: localIdentity, notifier: notifier}
}

func (b *Bridge) OnChangeEvent(ev models.ChangeEvent) {
	if ev.Op != models.OpInsert {
		return
	}
	if ev.Author == "" || ev.Author == b.local {
		return
	}
	format, ok := titles[ev.Table]
	if !ok {
		return
	}
	b.notifier.Notify(fmt.Sprintf(format, ev.Author), "", DefaultDuration, false)
}
