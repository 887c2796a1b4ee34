package cli

import (
	"context"
	"os"

	"github.com/pairspace/loveos/internal/common"
)

// getSimpleText and getPasscode are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPasscode = GetPasscode

// Login prompts for the space name and passcode, authenticates, and starts
// the live sync machinery on success.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in as", a.space.DisplayName)
		return nil
	}

	name, err := getSimpleText(a.reader, "Who are you? (cookie/bear)", os.Stdout)
	if err != nil {
		return err
	}

	passcode, err := getPasscode(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passcode)

	space, err := a.store.Login(ctx, name, string(passcode))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}
	a.space = space

	if err := a.startSync(ctx); err != nil {
		printlnFn("Live updates unavailable:", err.Error())
	}

	printlnFn("Welcome back,", space.DisplayName+"!")
	return nil
}

// Logout tears down subscriptions and forgets the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.teardown()
	a.space = nil
	printlnFn("Logged out")
	return nil
}
