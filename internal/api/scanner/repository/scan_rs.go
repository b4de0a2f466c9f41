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

type ScanDB struct {
	ID              sql.NullString  `db:"id"`
	UserID          sql.NullString  `db:"user_id"`
	ObjectName      sql.NullString  `db:"object_name"`
	ObjectType      sql.NullString  `db:"object_type"`
	ImageURL        sql.NullString  `db:"image_url"`
	ConfidenceScore sql.NullFloat64 `db:"confidence_score"`
	CreatedAt       sql.NullTime    `db:"created_at"`
}

func (r *scanRepository) CreateScan(c context.Context, scan entity.ScannedObject) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               scan.ID,
		"user_id":          scan.UserID,
		"object_name":      scan.ObjectName,
		"object_type":      scan.ObjectType,
		"image_url":        scan.ImageURL,
		"confidence_score": scan.ConfidenceScore,
		"created_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateScan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateScan named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateScan execution err")
		return err
	}

	return nil
}

func (r *scanRepository) GetScansByUser(c context.Context, userID string, limit int) ([]entity.ScannedObject, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetScansByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScansByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScansByUser execution err")
		return nil, err
	}
	defer rows.Close()

	scans := make([]entity.ScannedObject, 0)
	for rows.Next() {
		var scan ScanDB
		if err := rows.StructScan(&scan); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("GetScansByUser scan err")
			return nil, err
		}
		scans = append(scans, r.makeScan(scan))
	}

	return scans, rows.Err()
}

func (r *scanRepository) CountScansByUser(c context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCountScansByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountScansByUser named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountScansByUser execution err")
		return 0, err
	}

	return count, nil
}

func (r *scanRepository) DeleteScansByUser(c context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteScansByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteScansByUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteScansByUser execution err")
		return err
	}

	return nil
}

func (r *scanRepository) makeScan(scan ScanDB) entity.ScannedObject {
	var createdAt time.Time
	if scan.CreatedAt.Valid {
		createdAt = scan.CreatedAt.Time
	}

	return entity.ScannedObject{
		ID:              scan.ID.String,
		UserID:          scan.UserID.String,
		ObjectName:      scan.ObjectName.String,
		ObjectType:      scan.ObjectType.String,
		ImageURL:        scan.ImageURL.String,
		ConfidenceScore: scan.ConfidenceScore.Float64,
		CreatedAt:       createdAt,
	}
}
