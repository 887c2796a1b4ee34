package models

// Change event kinds as emitted by the Postgres triggers (TG_OP values).
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// ChangeEvent is the payload sent on the change feed whenever a row in a
// watched table is inserted, updated, or deleted. It deliberately carries no
// row state; consumers are expected to refetch.
type ChangeEvent struct {
	Table  string `json:"table"`
	Op     string `json:"op"`
	Author string `json:"author"`
}
