package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, role, employment_type,
	job_title, department, phone, active, first_login_pending,
	created_at, updated_at, last_login`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (
			id, email, name, password_hash, role, employment_type,
			job_title, department, phone, active, first_login_pending,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		string(u.Role),
		mapStringNull(string(u.EmploymentType)),
		mapStringNull(u.JobTitle),
		mapStringNull(u.Department),
		mapStringNull(u.Phone),
		u.Active,
		u.FirstLoginPending,
		now,
		now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) SetUserActive(ctx context.Context, userID string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, first_login_pending = 0, updated_at = ?
		 WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ?, updated_at = ? WHERE id = ?`,
		at.UTC(), time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u              domain.User
		role           string
		employmentType sql.NullString
		jobTitle       sql.NullString
		department     sql.NullString
		phone          sql.NullString
		lastLogin      sql.NullTime
	)

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&role,
		&employmentType,
		&jobTitle,
		&department,
		&phone,
		&u.Active,
		&u.FirstLoginPending,
		&u.CreatedAt,
		&u.UpdatedAt,
		&lastLogin,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Role = domain.Role(role)
	u.EmploymentType = domain.EmploymentType(mapNullString(employmentType))
	u.JobTitle = mapNullString(jobTitle)
	u.Department = mapNullString(department)
	u.Phone = mapNullString(phone)
	u.LastLogin = mapNullTimePtr(lastLogin)

	return u, nil
}
