package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Moods(ctx context.Context) error
	ShareMood(ctx context.Context) error
	Photos(ctx context.Context) error
	AddPhoto(ctx context.Context) error
	Letters(ctx context.Context) error
	SendLetter(ctx context.Context) error
	Question(ctx context.Context) error
	Answer(ctx context.Context) error
	Anniversary(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Love OS client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("love> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (m)oods, sharemood, photos, addphoto, letters, sendletter, question, answer, anniversary, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "m", "moods":
			_ = a.Moods(ctx)

		case "sharemood":
			_ = a.ShareMood(ctx)

		case "photos":
			_ = a.Photos(ctx)

		case "addphoto":
			_ = a.AddPhoto(ctx)

		case "letters":
			_ = a.Letters(ctx)

		case "sendletter":
			_ = a.SendLetter(ctx)

		case "question":
			_ = a.Question(ctx)

		case "answer":
			_ = a.Answer(ctx)

		case "anniversary":
			_ = a.Anniversary(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
