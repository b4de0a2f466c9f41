package entity

import "time"

type UserPreferences struct {
	UserID        string    `db:"user_id" json:"user_id"`
	VoiceEnabled  bool      `db:"voice_enabled" json:"voice_enabled"`
	VoiceLanguage string    `db:"voice_language" json:"voice_language"`
	Theme         string    `db:"theme" json:"theme"`
	AutoSpeak     bool      `db:"auto_speak" json:"auto_speak"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
