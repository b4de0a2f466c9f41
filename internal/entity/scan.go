package entity

import "time"

// ScannedObject is one classification result persisted for the owning
// user. Rows are insert-only and removed only by a bulk history clear.
type ScannedObject struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	ObjectName      string    `db:"object_name" json:"object_name"`
	ObjectType      string    `db:"object_type" json:"object_type"`
	ImageURL        string    `db:"image_url" json:"image_url,omitempty"`
	ConfidenceScore float64   `db:"confidence_score" json:"confidence_score"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
