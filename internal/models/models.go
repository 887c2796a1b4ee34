// Package models holds the typed record shapes shared by the server API and
// the client store. Rows coming out of Postgres and JSON coming over the wire
// are mapped to these structs once, at the boundary.
package models

import "time"

// Space is one of the two fixed partner identities. The Name field is the
// identity string all authored content is attributed to.
type Space struct {
	Name              string     `json:"name"`
	DisplayName       string     `json:"display_name"`
	Partner           string     `json:"partner"`
	AnniversaryDate   *time.Time `json:"anniversary_date,omitempty"`
	RelationshipStart *time.Time `json:"relationship_start,omitempty"`
}

// MoodEntry is one partner's mood-of-the-moment. Many per identity over time;
// never edited or deleted.
type MoodEntry struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Emoji     string    `json:"emoji"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Note      string    `json:"note,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PhotoEntry is an uploaded gallery photo. Immutable once created.
type PhotoEntry struct {
	ID         string    `json:"id"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption,omitempty"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// LetterEntry is a love letter from one identity to the other. Immutable.
type LetterEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	From      string    `json:"from_author"`
	To        string    `json:"to_author"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionEntry is seeded reference data, one question per date.
type QuestionEntry struct {
	ID       string    `json:"id"`
	Text     string    `json:"question_text"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// AnswerEntry is one identity's answer to a question. The only entity with
// update-in-place semantics: a second submission by the same identity for the
// same question replaces the text of the existing record.
type AnswerEntry struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Author     string    `json:"author"`
	Text       string    `json:"answer_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Anniversary is the derived countdown state for the couple.
type Anniversary struct {
	DaysTogether int       `json:"days_together"`
	DaysUntil    int       `json:"days_until"`
	Next         time.Time `json:"next"`
}
