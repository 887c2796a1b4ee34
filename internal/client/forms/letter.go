package forms

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

type LetterWriter interface {
	SendLetter(ctx context.Context, l *models.LetterEntry) (*models.LetterEntry, error)
}

// LetterForm holds a love letter draft. To is the partner identity.
type LetterForm struct {
	Title   string
	Content string
	To      string

	store LetterWriter
}

func NewLetterForm(store LetterWriter, to string) *LetterForm {
	return &LetterForm{store: store, To: to}
}

func (f *LetterForm) Validate() Errors {
	errs := Errors{}
	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > MaxLetterTitleLen {
		errs["title"] = "title is too long"
	}
	n := utf8.RuneCountInString(f.Content)
	if n < MinLetterContentLen {
		errs["content"] = "letter is too short"
	} else if n > MaxLetterContentLen {
		errs["content"] = "letter is too long"
	}
	return errs
}

// Submit writes the letter. On success the draft is cleared; on any failure
// it is preserved for resubmission.
func (f *LetterForm) Submit(ctx context.Context) (*models.LetterEntry, error) {
	if !f.Validate().Valid() {
		return nil, common.ErrValidation
	}

	created, err := f.store.SendLetter(ctx, &models.LetterEntry{
		Title:   strings.TrimSpace(f.Title),
		Content: f.Content,
		To:      f.To,
	})
	if err != nil {
		return nil, err
	}

	f.Title = ""
	f.Content = ""
	return created, nil
}
