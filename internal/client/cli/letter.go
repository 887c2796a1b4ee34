package cli

import (
	"context"
	"fmt"
	"os"
)

// Letters prints the letter history, newest on top.
func (a *App) Letters(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items := a.letters.Items()
	if len(items) == 0 {
		printlnFn("No letters yet")
		return nil
	}
	for _, l := range items {
		printlnFn(fmt.Sprintf("  %s  %s → %s: %s",
			l.CreatedAt.Format("Jan 2 15:04"), l.From, l.To, l.Title))
	}
	return nil
}

// SendLetter walks through the letter form interactively. The recipient is
// always the partner.
func (a *App) SendLetter(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	form := a.letterForm()

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Your letter", os.Stdout)
	if err != nil {
		return err
	}

	form.Title = title
	form.Content = content

	if errs := form.Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if _, err := form.Submit(ctx); err != nil {
		printlnFn("Could not send the letter:", err.Error())
		return err
	}
	printlnFn("Letter sent 💌")
	return nil
}
