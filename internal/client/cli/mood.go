package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}

// Moods prints both partners' current moods followed by the shared history.
func (a *App) Moods(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	pair, err := a.projector.Pair(ctx, [2]string{a.space.Name, a.space.Partner})
	if err != nil {
		printlnFn("Could not load current moods:", err.Error())
	} else {
		for _, identity := range []string{a.space.Name, a.space.Partner} {
			if m, ok := pair[identity]; ok {
				printlnFn(fmt.Sprintf("%s is feeling %s %s", identity, m.Emoji, m.Label))
			} else {
				printlnFn(identity, "has not shared a mood yet")
			}
		}
	}

	items := a.moods.Items()
	if len(items) == 0 {
		printlnFn("No moods in the log yet")
		return nil
	}
	printlnFn("History:")
	for _, m := range items {
		line := fmt.Sprintf("  %s  %s %s", m.CreatedAt.Format("Jan 2 15:04"), m.Emoji, m.Author)
		if m.Note != "" {
			line += ": " + m.Note
		}
		printlnFn(line)
	}
	return nil
}

// ShareMood walks through the mood form interactively.
func (a *App) ShareMood(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	form := a.moodForm()

	emoji, err := getSimpleText(a.reader, "Emoji", os.Stdout)
	if err != nil {
		return err
	}
	label, err := getSimpleText(a.reader, "Label (e.g. In love)", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	form.Emoji = emoji
	form.Label = label
	form.Note = note

	if errs := form.Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if _, err := form.Submit(ctx); err != nil {
		printlnFn("Could not share the mood:", err.Error())
		return err
	}
	printlnFn("Mood shared 💕")
	return nil
}
