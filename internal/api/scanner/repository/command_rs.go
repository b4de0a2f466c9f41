package scannerRepository

import (
	"SmartObjectAI/internal/entity"
	contextPkg "SmartObjectAI/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommandDB struct {
	ID           sql.NullString `db:"id"`
	UserID       sql.NullString `db:"user_id"`
	CommandText  sql.NullString `db:"command_text"`
	ActionResult sql.NullString `db:"action_result"`
	ExecutedAt   sql.NullTime   `db:"executed_at"`
}

func (r *commandRepository) CreateCommand(c context.Context, command entity.VoiceCommand) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            command.ID,
		"user_id":       command.UserID,
		"command_text":  command.CommandText,
		"action_result": command.ActionResult,
		"executed_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCommand, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCommand named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCommand execution err")
		return err
	}

	return nil
}

func (r *commandRepository) GetCommandsByUser(c context.Context, userID string, limit int) ([]entity.VoiceCommand, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetCommandsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommandsByUser execution err")
		return nil, err
	}
	defer rows.Close()

	commands := make([]entity.VoiceCommand, 0)
	for rows.Next() {
		var command CommandDB
		if err := rows.StructScan(&command); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetCommandsByUser scan err")
			return nil, err
		}
		commands = append(commands, r.makeCommand(command))
	}

	return commands, rows.Err()
}

func (r *commandRepository) CountCommandsByUser(c context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCountCommandsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountCommandsByUser named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountCommandsByUser execution err")
		return 0, err
	}

	return count, nil
}

func (r *commandRepository) DeleteCommandsByUser(c context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteCommandsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommandsByUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommandsByUser execution err")
		return err
	}

	return nil
}

func (r *commandRepository) makeCommand(command CommandDB) entity.VoiceCommand {
	var executedAt time.Time
	if command.ExecutedAt.Valid {
		executedAt = command.ExecutedAt.Time
	}

	return entity.VoiceCommand{
		ID:           command.ID.String,
		UserID:       command.UserID.String,
		CommandText:  command.CommandText.String,
		ActionResult: command.ActionResult.String,
		ExecutedAt:   executedAt,
	}
}
