// Package forms implements the submission forms: pure validation plus a
// submit that writes exactly one new (or, for answers, updated) log entry.
// Failed submissions keep the draft; successful ones clear it.
package forms

// Field limits. Lengths are counted in runes, sizes in bytes.
const (
	MaxLetterTitleLen   = 100
	MinLetterContentLen = 10
	MaxLetterContentLen = 5000
	MaxMoodNoteLen      = 500
	MaxAttachmentSize   = 5 * 1024 * 1024
)

// Errors maps a field name to its validation message. An empty map means the
// input is valid. Validation is local; nothing is sent to the store.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}
