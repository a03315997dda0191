package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
)

type TrainerRepository struct {
	db *sql.DB
}

func NewTrainerRepository(db *sql.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO trainers (email, password_hash) VALUES (?, ?)`,
		email,
		passwordHash,
	)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("failed to create trainer: %w", err)
	}
	return result.LastInsertId()
}

// GetByEmail returns nil, nil when no trainer has the address.
func (r *TrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	var t domain.Trainer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM trainers WHERE email = ?`,
		email,
	).Scan(&t.ID, &t.Email, &t.PasswordHash, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}
	return &t, nil
}

func (r *TrainerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE trainers SET password_hash = ? WHERE id = ?`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
