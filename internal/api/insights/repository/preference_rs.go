package insightsRepository

import (
	"SmartObjectAI/internal/api/insights"
	"SmartObjectAI/internal/entity"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PreferencesDB struct {
	UserID        sql.NullString `db:"user_id"`
	VoiceEnabled  sql.NullBool   `db:"voice_enabled"`
	VoiceLanguage sql.NullString `db:"voice_language"`
	Theme         sql.NullString `db:"theme"`
	AutoSpeak     sql.NullBool   `db:"auto_speak"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

func (r *preferenceRepository) GetPreferences(c context.Context, userID string) (entity.UserPreferences, error) {
	requestID := contextPkg.GetRequestID(c)
	var prefs PreferencesDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetPreferences, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPreferences named query preparation err")
		return entity.UserPreferences{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&prefs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.UserPreferences{}, insights.ErrPreferencesNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPreferences execution err")
		return entity.UserPreferences{}, err
	}

	return r.makePreferences(prefs), nil
}

func (r *preferenceRepository) UpsertPreferences(c context.Context, prefs entity.UserPreferences) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":        prefs.UserID,
		"voice_enabled":  prefs.VoiceEnabled,
		"voice_language": prefs.VoiceLanguage,
		"theme":          prefs.Theme,
		"auto_speak":     prefs.AutoSpeak,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertPreferences, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertPreferences named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertPreferences execution err")
		return err
	}

	return nil
}

func (r *preferenceRepository) makePreferences(prefs PreferencesDB) entity.UserPreferences {
	var updatedAt time.Time
	if prefs.UpdatedAt.Valid {
		updatedAt = prefs.UpdatedAt.Time
	}

	return entity.UserPreferences{
		UserID:        prefs.UserID.String,
		VoiceEnabled:  prefs.VoiceEnabled.Bool,
		VoiceLanguage: prefs.VoiceLanguage.String,
		Theme:         prefs.Theme.String,
		AutoSpeak:     prefs.AutoSpeak.Bool,
		UpdatedAt:     updatedAt,
	}
}
