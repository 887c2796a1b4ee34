package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pairspace/loveos/internal/common"
)

// Question prints today's question and any answers so far.
func (a *App) Question(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	q, err := a.store.TodaysQuestion(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No question today")
			return nil
		}
		printlnFn("Could not load today's question:", err.Error())
		return err
	}

	printlnFn("Today's question:", q.Text)

	answers, err := a.store.AnswersFor(ctx, q.ID)
	if err != nil {
		printlnFn("Could not load answers:", err.Error())
		return err
	}
	if len(answers) == 0 {
		printlnFn("No answers yet, be the first!")
		return nil
	}
	for _, ans := range answers {
		printlnFn("  " + ans.Author + ": " + ans.Text)
	}
	return nil
}

// Answer submits or replaces this space's answer to today's question.
func (a *App) Answer(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	q, err := a.store.TodaysQuestion(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No question today")
			return nil
		}
		printlnFn("Could not load today's question:", err.Error())
		return err
	}
	printlnFn("Today's question:", q.Text)

	text, err := getSimpleText(a.reader, "Your answer", os.Stdout)
	if err != nil {
		return err
	}

	form := a.answerForm(q.ID)
	form.Text = text

	if errs := form.Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if err := form.Submit(ctx); err != nil {
		printlnFn("Could not save the answer:", err.Error())
		return err
	}
	printlnFn("Answer saved ✨")
	return nil
}
