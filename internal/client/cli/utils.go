package cli

import "github.com/pairspace/loveos/internal/client/forms"

// printFieldErrors renders validation errors inline, one per field.
func printFieldErrors(errs forms.Errors) {
	for field, msg := range errs {
		printlnFn("  " + field + ": " + msg)
	}
}
