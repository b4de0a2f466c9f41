package entity

import "time"

type VoiceCommand struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	CommandText  string    `db:"command_text" json:"command_text"`
	ActionResult string    `db:"action_result" json:"action_result"`
	ExecutedAt   time.Time `db:"executed_at" json:"executed_at"`
}
