package forms

import (
	"context"
	"unicode/utf8"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

type MoodWriter interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	ShareMood(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error)
}

// MoodForm holds a mood-of-the-moment draft with an optional photo
// attachment.
type MoodForm struct {
	Emoji          string
	Label          string
	Color          string
	Note           string
	Attachment     []byte
	AttachmentName string

	store MoodWriter
}

func NewMoodForm(store MoodWriter) *MoodForm {
	return &MoodForm{store: store}
}

func (f *MoodForm) Validate() Errors {
	errs := Errors{}
	if f.Emoji == "" {
		errs["emoji"] = "pick a mood"
	}
	if utf8.RuneCountInString(f.Note) > MaxMoodNoteLen {
		errs["note"] = "note is too long"
	}
	if len(f.Attachment) > MaxAttachmentSize {
		errs["attachment"] = "photo is too big"
	}
	return errs
}

// Submit uploads the attachment first, then inserts the mood entry. An
// upload failure aborts the submission and surfaces as a storage error,
// distinct from a store write error. The draft survives either failure.
func (f *MoodForm) Submit(ctx context.Context) (*models.MoodEntry, error) {
	if !f.Validate().Valid() {
		return nil, common.ErrValidation
	}

	var photoURL string
	if len(f.Attachment) > 0 {
		ref, err := f.store.Upload(ctx, f.AttachmentName, f.Attachment)
		if err != nil {
			return nil, err
		}
		photoURL = ref
	}

	created, err := f.store.ShareMood(ctx, &models.MoodEntry{
		Emoji:    f.Emoji,
		Label:    f.Label,
		Color:    f.Color,
		Note:     f.Note,
		PhotoURL: photoURL,
	})
	if err != nil {
		return nil, err
	}

	f.Emoji = ""
	f.Label = ""
	f.Color = ""
	f.Note = ""
	f.Attachment = nil
	f.AttachmentName = ""
	return created, nil
}
