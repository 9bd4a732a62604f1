package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const (
	APIUserTable  = "api_user"
	LocationTable = "location"
	DeviceTable   = "device"

	APIUserEmailConstraint   = "api_user_email_key"
	DeviceLocationConstraint = "device_location_id_fkey"
	DeviceAPIUserConstraint  = "device_api_user_id_fkey"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS api_user (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	CONSTRAINT api_user_email_key UNIQUE (email)
)`,
	`CREATE TABLE IF NOT EXISTS location (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS device (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(255) NOT NULL,
	login VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	location_id BIGINT NOT NULL,
	api_user_id BIGINT NOT NULL,
	CONSTRAINT device_location_id_fkey FOREIGN KEY (location_id) REFERENCES location (id) ON DELETE CASCADE,
	CONSTRAINT device_api_user_id_fkey FOREIGN KEY (api_user_id) REFERENCES api_user (id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS device_location_id_idx ON device (location_id)`,
	`CREATE INDEX IF NOT EXISTS device_api_user_id_idx ON device (api_user_id)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS device`,
	`DROP TABLE IF EXISTS location`,
	`DROP TABLE IF EXISTS api_user`,
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EnsureSchema creates the inventory tables if they are missing. Running it
// against an initialised database is a no-op.
func EnsureSchema(ctx context.Context, db TxBeginner) error {
	if err := execInTx(ctx, db, createStatements); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	return nil
}

// DropSchema removes the inventory tables, dependents first.
func DropSchema(ctx context.Context, db TxBeginner) error {
	if err := execInTx(ctx, db, dropStatements); err != nil {
		return fmt.Errorf("dropping schema: %w", err)
	}

	return nil
}

func CreateStatements() []string {
	return append([]string(nil), createStatements...)
}

func execInTx(ctx context.Context, db TxBeginner, statements []string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)

			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
