package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/jnanasetu/auth-service/internal/model"
)

// UserRepo provides access to the `users` table. Password hashing happens
// above this layer; the repo stores whatever hash string it is given.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// mysqlDuplicateEntry is the server error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// Create inserts a user and returns its ID. Email uniqueness is enforced by
// the unique index on users.email, not by a prior existence check, so
// concurrent duplicate registrations race safely: one insert wins and the
// other surfaces ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, fullName, email, hashedPassword string, termsAccepted bool) (uint64, error) {
	email = normalizeEmail(email)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, email, hashed_password, is_active, terms_accepted) VALUES (?,?,?,TRUE,?)",
		fullName, email, hashedPassword, termsAccepted)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email. Returns ErrUserNotFound
// when no row exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = normalizeEmail(email)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,full_name,email,hashed_password,is_active,terms_accepted,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.FullName, &u.Email, &u.HashedPassword, &u.IsActive, &u.TermsAccepted, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// UpdatePassword overwrites the stored hash for the given email. Returns
// ErrUserNotFound when the email matches no record.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	email = normalizeEmail(email)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET hashed_password=? WHERE email=?",
		hashedPassword, email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "no such user" from "hash unchanged": re-check existence.
		var id uint64
		err := r.DB.QueryRowContext(ctx, "SELECT id FROM users WHERE email=? LIMIT 1", email).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
