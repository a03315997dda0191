package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_trainers",
		sql: `
			CREATE TABLE IF NOT EXISTS trainers (
				id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`,
	},
	{
		version: "001_create_clients",
		sql: `
			CREATE TABLE IF NOT EXISTS clients (
				id          CHAR(36) PRIMARY KEY,
				trainer_id  BIGINT UNSIGNED NOT NULL,
				first_name  VARCHAR(100) NOT NULL,
				last_name   VARCHAR(100) NOT NULL,
				middle_name VARCHAR(100) NOT NULL DEFAULT '',
				phone       VARCHAR(32)  NOT NULL,
				email       VARCHAR(255) NOT NULL DEFAULT '',
				birth_date  DATE NULL,
				gender      VARCHAR(16)  NOT NULL DEFAULT '',
				notes       TEXT,
				is_active   BOOLEAN NOT NULL DEFAULT TRUE,
				created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				last_visit  DATETIME NULL,
				deleted_at  DATETIME NULL,
				UNIQUE KEY uq_clients_trainer_phone (trainer_id, phone),
				KEY idx_clients_trainer_name (trainer_id, last_name, first_name),
				FOREIGN KEY (trainer_id) REFERENCES trainers(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "002_create_measurements",
		sql: `
			CREATE TABLE IF NOT EXISTS measurements (
				id                 BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				client_id          CHAR(36) NOT NULL,
				taken_at           DATETIME NOT NULL,
				weight_kg          DOUBLE NULL,
				height_cm          DOUBLE NULL,
				resting_heart_rate INT NULL,
				activity_level     VARCHAR(32) NOT NULL DEFAULT '',
				body_fat           DOUBLE NULL,
				bmi                DOUBLE NULL,
				notes              TEXT,
				created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				KEY idx_measurements_client_taken (client_id, taken_at),
				FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "003_create_password_reset_tokens",
		sql: `
			CREATE TABLE IF NOT EXISTS password_reset_tokens (
				id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				trainer_id BIGINT UNSIGNED NOT NULL,
				token      VARCHAR(6) NOT NULL,
				expires_at DATETIME NOT NULL,
				used       BOOLEAN NOT NULL DEFAULT FALSE,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				KEY idx_reset_tokens_trainer (trainer_id),
				FOREIGN KEY (trainer_id) REFERENCES trainers(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "004_add_measurement_circumferences",
		sql: `
			ALTER TABLE measurements
				ADD COLUMN shoulders_cm   DOUBLE NULL AFTER bmi,
				ADD COLUMN chest_cm       DOUBLE NULL AFTER shoulders_cm,
				ADD COLUMN waist_cm       DOUBLE NULL AFTER chest_cm,
				ADD COLUMN hips_cm        DOUBLE NULL AFTER waist_cm,
				ADD COLUMN left_arm_cm    DOUBLE NULL AFTER hips_cm,
				ADD COLUMN right_arm_cm   DOUBLE NULL AFTER left_arm_cm,
				ADD COLUMN left_thigh_cm  DOUBLE NULL AFTER right_arm_cm,
				ADD COLUMN right_thigh_cm DOUBLE NULL AFTER left_thigh_cm,
				ADD COLUMN left_calf_cm   DOUBLE NULL AFTER right_thigh_cm,
				ADD COLUMN right_calf_cm  DOUBLE NULL AFTER left_calf_cm`,
	},
	{
		version: "005_add_measurement_blood_pressure",
		sql: `
			ALTER TABLE measurements
				ADD COLUMN bp_systolic  INT NULL AFTER right_calf_cm,
				ADD COLUMN bp_diastolic INT NULL AFTER bp_systolic`,
	},
	{
		version: "006_add_client_profile",
		sql:     `ALTER TABLE clients ADD COLUMN profile JSON NULL AFTER notes`,
	},
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(ctx, db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(ctx, db, m); err != nil {
			return err
		}

		log.Infof("applied migration: %s", m.version)
	}

	return nil
}

func isMigrationApplied(ctx context.Context, db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.sql, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
