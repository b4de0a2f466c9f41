package insights

import (
	"SmartObjectAI/internal/entity"
	"time"
)

type StatsResponse struct {
	Scans    int `json:"scans"`
	Commands int `json:"commands"`
	Actions  int `json:"actions"`
}

type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryItem struct {
	Scan           entity.ScannedObject  `json:"scan"`
	RecentCommands []entity.VoiceCommand `json:"recent_commands"`
}

type UpdatePreferencesRequest struct {
	VoiceEnabled  bool   `json:"voice_enabled"`
	VoiceLanguage string `json:"voice_language" validate:"required,min=2,max=10"`
	Theme         string `json:"theme" validate:"required,oneof=light dark system"`
	AutoSpeak     bool   `json:"auto_speak"`
}

type PreferencesResponse struct {
	VoiceEnabled  bool      `json:"voice_enabled"`
	VoiceLanguage string    `json:"voice_language"`
	Theme         string    `json:"theme"`
	AutoSpeak     bool      `json:"auto_speak"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ExportUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ExportDocument struct {
	User        ExportUser             `json:"user"`
	Statistics  StatsResponse          `json:"statistics"`
	Preferences PreferencesResponse    `json:"preferences"`
	Scans       []entity.ScannedObject `json:"scans"`
	ExportedAt  time.Time              `json:"exported_at"`
}
