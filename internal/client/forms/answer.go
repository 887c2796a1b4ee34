package forms

import (
	"context"
	"strings"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

type AnswerWriter interface {
	AnswersFor(ctx context.Context, questionID string) ([]models.AnswerEntry, error)
	SubmitAnswer(ctx context.Context, a *models.AnswerEntry) (*models.AnswerEntry, error)
	UpdateAnswer(ctx context.Context, id, text string) error
}

// AnswerForm submits one identity's answer to a daily question. At most one
// answer per identity per question: resubmitting replaces the existing
// answer's text instead of inserting a second row. The at-most-one rule is a
// client convention, not a store constraint.
type AnswerForm struct {
	QuestionID string
	Identity   string
	Text       string

	store AnswerWriter
}

func NewAnswerForm(store AnswerWriter, questionID, identity string) *AnswerForm {
	return &AnswerForm{store: store, QuestionID: questionID, Identity: identity}
}

func (f *AnswerForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Text) == "" {
		errs["answer"] = "answer is required"
	}
	return errs
}

// Submit inserts the answer, or updates the existing one when this identity
// already answered the question.
func (f *AnswerForm) Submit(ctx context.Context) error {
	if !f.Validate().Valid() {
		return common.ErrValidation
	}

	existing, err := f.store.AnswersFor(ctx, f.QuestionID)
	if err != nil {
		return err
	}

	for _, a := range existing {
		if a.Author == f.Identity {
			if err := f.store.UpdateAnswer(ctx, a.ID, f.Text); err != nil {
				return err
			}
			f.Text = ""
			return nil
		}
	}

	_, err = f.store.SubmitAnswer(ctx, &models.AnswerEntry{
		QuestionID: f.QuestionID,
		Text:       f.Text,
	})
	if err != nil {
		return err
	}
	f.Text = ""
	return nil
}
