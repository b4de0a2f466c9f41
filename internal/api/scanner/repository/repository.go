package scannerRepository

import (
	"SmartObjectAI/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Scans:    &scanRepository{q: db, log: r.log},
		Commands: &commandRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Scans interface {
		CreateScan(ctx context.Context, scan entity.ScannedObject) error
		GetScansByUser(ctx context.Context, userID string, limit int) ([]entity.ScannedObject, error)
		CountScansByUser(ctx context.Context, userID string) (int, error)
		DeleteScansByUser(ctx context.Context, userID string) error
	}

	Commands interface {
		CreateCommand(ctx context.Context, command entity.VoiceCommand) error
		GetCommandsByUser(ctx context.Context, userID string, limit int) ([]entity.VoiceCommand, error)
		CountCommandsByUser(ctx context.Context, userID string) (int, error)
		DeleteCommandsByUser(ctx context.Context, userID string) error
	}

	Commit   func() error
	Rollback func() error
}

type scanRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type commandRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
