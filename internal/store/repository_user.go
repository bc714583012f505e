// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

// userRepository is the SQL implementation of [UserRepository]. Roles and
// recovery codes live in their own tables and are maintained here as well,
// since they have no lifecycle apart from the user.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.DisplayName,
		&u.PasswordHash,
		&u.SecurityStamp,
		&u.PasswordChangedAt,
		&u.MustChangePassword,
		&u.TwoFactorEnabled,
		&u.AuthenticatorKey,
		&u.LockoutEnabled,
		&u.FailedAccessCount,
		&u.LockoutEnd,
		&u.PreferredTheme,
		&u.CreatedAt,
	)
	return u, err
}

// CreateUser inserts the user together with its roles in one transaction and
// returns the stored row. A duplicate email yields [ErrConflict].
func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.PreferredTheme == "" {
		user.PreferredTheme = models.ThemeAuto
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query, args, err := u.db.builder.
		Insert("users").
		Columns(userColumns[1:]...).
		Values(
			user.Email,
			user.DisplayName,
			user.PasswordHash,
			user.SecurityStamp,
			utcPtr(user.PasswordChangedAt),
			user.MustChangePassword,
			user.TwoFactorEnabled,
			user.AuthenticatorKey,
			user.LockoutEnabled,
			user.FailedAccessCount,
			utcPtr(user.LockoutEnd),
			user.PreferredTheme,
			utc(user.CreatedAt),
		).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = u.db.withTx(ctx, func(tx *sql.Tx) error {
		created, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				log.Warn().Str("func", "*userRepository.CreateUser").Msg("email is already registered")
			}
			return u.db.translate(ErrExecutingStatement, err)
		}

		if err = u.insertRoles(ctx, tx, created.UserID, user.Roles); err != nil {
			return err
		}
		created.Roles = append([]string(nil), user.Roles...)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

func (u *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return u.getUser(ctx, sq.Eq{"user_id": userID})
}

// GetUserByEmail matches emails case-insensitively.
func (u *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return u.getUser(ctx, sq.Expr("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (u *userRepository) getUser(ctx context.Context, pred any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.db.builder.
		Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(u.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = u.db.translate(ErrScanningRow, err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.getUser").Msg("error reading user")
		}
		return models.User{}, err
	}

	if user.Roles, err = u.GetRoles(ctx, user.UserID); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (u *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := u.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// roles are loaded after the cursor is closed; sqlite runs on one connection
	rows.Close()
	for i := range users {
		if users[i].Roles, err = u.GetRoles(ctx, users[i].UserID); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// DeleteUser removes the user. Sessions, login history, roles, recovery codes
// and audit rows about the user cascade; audit rows written by the user
// block the delete with [ErrConflict].
func (u *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := u.db.builder.
		Delete("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return u.db.translate(ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *userRepository) GetRoles(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := u.db.builder.
		Select("role").
		From("user_roles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("role").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := u.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetRoles").Int64("user_id", userID).Msg("error reading roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]string, 0, 2)
	for rows.Next() {
		var role string
		if err = rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		roles = append(roles, role)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

// SetRoles replaces the role set of the user.
func (u *userRepository) SetRoles(ctx context.Context, userID int64, roles []string) error {
	query, args, err := u.db.builder.
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = u.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return u.db.translate(ErrExecutingStatement, err)
		}
		return u.insertRoles(ctx, tx, userID, roles)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.SetRoles").Int64("user_id", userID).Msg("error replacing roles")
	}
	return err
}

func (u *userRepository) insertRoles(ctx context.Context, tx *sql.Tx, userID int64, roles []string) error {
	if len(roles) == 0 {
		return nil
	}

	builder := u.db.builder.Insert("user_roles").Columns("user_id", "role")
	for _, role := range roles {
		builder = builder.Values(userID, role)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return u.db.translate(ErrExecutingStatement, err)
	}
	return nil
}

// UpdatePassword stores a new hash and security stamp. changedAt is nil for
// administrative resets.
func (u *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash, stamp string, changedAt *time.Time, mustChange bool) error {
	return u.update(ctx, "*userRepository.UpdatePassword", userID, map[string]any{
		"password_hash":        passwordHash,
		"security_stamp":       stamp,
		"password_changed_at":  utcPtr(changedAt),
		"must_change_password": mustChange,
	})
}

func (u *userRepository) SetPasswordChangedAt(ctx context.Context, userID int64, changedAt time.Time) error {
	return u.update(ctx, "*userRepository.SetPasswordChangedAt", userID, map[string]any{
		"password_changed_at": utc(changedAt),
	})
}

func (u *userRepository) SetMustChangePassword(ctx context.Context, userID int64, mustChange bool) error {
	return u.update(ctx, "*userRepository.SetMustChangePassword", userID, map[string]any{
		"must_change_password": mustChange,
	})
}

func (u *userRepository) UpdateSecurityStamp(ctx context.Context, userID int64, stamp string) error {
	return u.update(ctx, "*userRepository.UpdateSecurityStamp", userID, map[string]any{
		"security_stamp": stamp,
	})
}

func (u *userRepository) SetPreferredTheme(ctx context.Context, userID int64, theme string) error {
	return u.update(ctx, "*userRepository.SetPreferredTheme", userID, map[string]any{
		"preferred_theme": theme,
	})
}

func (u *userRepository) ResetFailedAccess(ctx context.Context, userID int64) error {
	return u.update(ctx, "*userRepository.ResetFailedAccess", userID, map[string]any{
		"failed_access_count": 0,
	})
}

func (u *userRepository) SetLockoutEnd(ctx context.Context, userID int64, end *time.Time) error {
	return u.update(ctx, "*userRepository.SetLockoutEnd", userID, map[string]any{
		"lockout_end":         utcPtr(end),
		"failed_access_count": 0,
	})
}

func (u *userRepository) SetTwoFactor(ctx context.Context, userID int64, enabled bool, authenticatorKey string) error {
	return u.update(ctx, "*userRepository.SetTwoFactor", userID, map[string]any{
		"two_factor_enabled": enabled,
		"authenticator_key":  authenticatorKey,
	})
}

// IncrementFailedAccess increments the counter atomically in the database so
// that concurrent failures are all counted.
func (u *userRepository) IncrementFailedAccess(ctx context.Context, userID int64) (int, error) {
	query, args, err := u.db.builder.
		Update("users").
		Set("failed_access_count", sq.Expr("failed_access_count + 1")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING failed_access_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = u.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		err = u.db.translate(ErrExecutingStatement, err)
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.IncrementFailedAccess").Int64("user_id", userID).Msg("error incrementing failed access count")
		}
		return 0, err
	}

	return count, nil
}

func (u *userRepository) update(ctx context.Context, fn string, userID int64, values map[string]any) error {
	query, args, err := u.db.builder.
		Update("users").
		SetMap(values).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Int64("user_id", userID).Msg("error updating user")
		return u.db.translate(ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *userRepository) ReplaceRecoveryCodes(ctx context.Context, userID int64, hashes []string) error {
	deleteQuery, deleteArgs, err := u.db.builder.
		Delete("user_recovery_codes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	now := utc(time.Now())
	insert := u.db.builder.Insert("user_recovery_codes").Columns("user_id", "code_hash", "created_at")
	for _, hash := range hashes {
		insert = insert.Values(userID, hash, now)
	}

	err = u.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return u.db.translate(ErrExecutingStatement, err)
		}
		if len(hashes) == 0 {
			return nil
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return u.db.translate(ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ReplaceRecoveryCodes").Int64("user_id", userID).Msg("error replacing recovery codes")
	}
	return err
}

// RedeemRecoveryCode flips redeemed_at in a single conditional update, so a
// code can only be consumed once even under concurrent redemption.
func (u *userRepository) RedeemRecoveryCode(ctx context.Context, userID int64, hash string, at time.Time) error {
	query, args, err := u.db.builder.
		Update("user_recovery_codes").
		Set("redeemed_at", utc(at)).
		Where(sq.Eq{"user_id": userID, "code_hash": hash, "redeemed_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.RedeemRecoveryCode").Int64("user_id", userID).Msg("error redeeming recovery code")
		return u.db.translate(ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountRecoveryCodes returns the number of unredeemed codes.
func (u *userRepository) CountRecoveryCodes(ctx context.Context, userID int64) (int, error) {
	query, args, err := u.db.builder.
		Select("COUNT(*)").
		From("user_recovery_codes").
		Where(sq.Eq{"user_id": userID, "redeemed_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = u.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountRecoveryCodes").Int64("user_id", userID).Msg("error counting recovery codes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}

func (u *userRepository) DeleteRecoveryCodes(ctx context.Context, userID int64) error {
	return u.ReplaceRecoveryCodes(ctx, userID, nil)
}
