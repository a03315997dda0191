package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yusufkecer/fitness-crm-backend/internal/domain"
)

const clientColumns = `id, trainer_id, first_name, last_name, middle_name, phone, email,
	birth_date, gender, notes, is_active, created_at, updated_at, last_visit, deleted_at, profile`

const DefaultRecentLimit = 10

type ClientRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	now := r.now()
	c.ID = uuid.NewString()
	c.IsActive = true
	c.CreatedAt = now
	c.UpdatedAt = now

	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode client profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO clients (id, trainer_id, first_name, last_name, middle_name, phone, email,
			birth_date, gender, notes, profile, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
		c.ID, c.TrainerID, c.FirstName, c.LastName, c.MiddleName, c.Phone, c.Email,
		c.BirthDate, c.Gender, c.Notes, string(profile), now, now,
	)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Get(ctx context.Context, trainerID int64, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ? AND trainer_id = ?`,
		id, trainerID,
	)
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, trainerID int64, activeOnly bool) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE trainer_id = ?`
	if activeOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY last_name, first_name`
	return r.query(ctx, "list clients", query, trainerID)
}

// Search matches active clients by first name, last name, phone or e-mail.
func (r *ClientRepository) Search(ctx context.Context, trainerID int64, q string) ([]domain.Client, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return r.List(ctx, trainerID, true)
	}

	pattern := "%" + escapeLike(q) + "%"
	return r.query(ctx, "search clients",
		`SELECT `+clientColumns+` FROM clients
		 WHERE trainer_id = ? AND is_active = 1
		   AND (first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ?)
		 ORDER BY last_name, first_name`,
		trainerID, pattern, pattern, pattern, pattern,
	)
}

// Update sets the allow-listed columns in fields and bumps updated_at.
// Unknown keys are ignored.
func (r *ClientRepository) Update(ctx context.Context, trainerID int64, id string, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if domain.ClientUpdateFields[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	setClauses := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+3)
	for _, k := range keys {
		setClauses = append(setClauses, k+" = ?")
		args = append(args, fields[k])
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, r.now(), id, trainerID)

	query := "UPDATE clients SET " + strings.Join(setClauses, ", ") + " WHERE id = ? AND trainer_id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return expectAffected(res, "update client")
}

// SoftDelete moves an active client to the trash.
func (r *ClientRepository) SoftDelete(ctx context.Context, trainerID int64, id string) error {
	now := r.now()
	return r.exec(ctx, "soft delete client",
		`UPDATE clients SET is_active = 0, deleted_at = ?, updated_at = ?
		 WHERE id = ? AND trainer_id = ? AND is_active = 1`,
		now, now, id, trainerID,
	)
}

func (r *ClientRepository) ListTrash(ctx context.Context, trainerID int64) ([]domain.Client, error) {
	return r.query(ctx, "list trash",
		`SELECT `+clientColumns+` FROM clients
		 WHERE trainer_id = ? AND is_active = 0
		 ORDER BY deleted_at DESC, last_name, first_name`,
		trainerID,
	)
}

func (r *ClientRepository) Restore(ctx context.Context, trainerID int64, id string) error {
	return r.exec(ctx, "restore client",
		`UPDATE clients SET is_active = 1, deleted_at = NULL, updated_at = ?
		 WHERE id = ? AND trainer_id = ? AND is_active = 0`,
		r.now(), id, trainerID,
	)
}

// Purge permanently deletes a client that is already in the trash.
// Measurements go with it through the foreign key.
func (r *ClientRepository) Purge(ctx context.Context, trainerID int64, id string) error {
	return r.exec(ctx, "purge client",
		`DELETE FROM clients WHERE id = ? AND trainer_id = ? AND is_active = 0`,
		id, trainerID,
	)
}

func (r *ClientRepository) EmptyTrash(ctx context.Context, trainerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM clients WHERE trainer_id = ? AND is_active = 0`,
		trainerID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to empty trash: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to empty trash: %w", err)
	}
	return n, nil
}

// Recent lists active clients that have a recorded visit, newest first.
func (r *ClientRepository) Recent(ctx context.Context, trainerID int64, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return r.query(ctx, "list recent clients",
		`SELECT `+clientColumns+` FROM clients
		 WHERE trainer_id = ? AND is_active = 1 AND last_visit IS NOT NULL
		 ORDER BY last_visit DESC
		 LIMIT ?`,
		trainerID, limit,
	)
}

func (r *ClientRepository) TouchVisit(ctx context.Context, trainerID int64, id string) error {
	now := r.now()
	return r.exec(ctx, "update last visit",
		`UPDATE clients SET last_visit = ?, updated_at = ?
		 WHERE id = ? AND trainer_id = ? AND is_active = 1`,
		now, now, id, trainerID,
	)
}

// Statistics counts active and trashed clients, and active clients created
// since the first day of now's month.
func (r *ClientRepository) Statistics(ctx context.Context, trainerID int64, now time.Time) (*domain.ClientStats, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats domain.ClientStats
	err := r.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(is_active = 1), 0),
			COALESCE(SUM(is_active = 0), 0),
			COALESCE(SUM(is_active = 1 AND created_at >= ?), 0)
		 FROM clients WHERE trainer_id = ?`,
		monthStart, trainerID,
	).Scan(&stats.TotalActive, &stats.InTrash, &stats.NewThisMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get client statistics: %w", err)
	}
	return &stats, nil
}

func (r *ClientRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return clients, nil
}

func (r *ClientRepository) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return expectAffected(res, op)
}

func expectAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(s rowScanner) (*domain.Client, error) {
	var (
		c         domain.Client
		birthDate sql.NullTime
		notes     sql.NullString
		lastVisit sql.NullTime
		deletedAt sql.NullTime
		profile   sql.NullString
	)
	err := s.Scan(
		&c.ID, &c.TrainerID, &c.FirstName, &c.LastName, &c.MiddleName, &c.Phone, &c.Email,
		&birthDate, &c.Gender, &notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &lastVisit, &deletedAt,
		&profile,
	)
	if err != nil {
		return nil, err
	}

	if profile.Valid && profile.String != "" {
		if err := json.Unmarshal([]byte(profile.String), &c.Profile); err != nil {
			return nil, fmt.Errorf("decode profile of client %s: %w", c.ID, err)
		}
	}

	if birthDate.Valid {
		bd := birthDate.Time.Format(domain.DateLayout)
		c.BirthDate = &bd
	}
	c.Notes = notes.String
	if lastVisit.Valid {
		c.LastVisit = &lastVisit.Time
	}
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.Time
	}
	return &c, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
