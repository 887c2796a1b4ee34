package cli

import (
	"context"
	"fmt"
)

// Anniversary prints the countdown to the next anniversary and the running
// days-together counter.
func (a *App) Anniversary(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	ann, err := a.store.Anniversary(ctx)
	if err != nil {
		printlnFn("Could not load the countdown:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%d days together 💑", ann.DaysTogether))
	switch ann.DaysUntil {
	case 0:
		printlnFn("Happy anniversary! 🎉")
	case 1:
		printlnFn("Anniversary is tomorrow!")
	default:
		printlnFn(fmt.Sprintf("%d days until your anniversary (%s)",
			ann.DaysUntil, ann.Next.Format("January 2")))
	}
	return nil
}
