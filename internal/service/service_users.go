// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

// UserDependencies are the collaborators of user administration.
type UserDependencies struct {
	Users     store.UserRepository
	Hasher    crypto.PasswordHasher
	Passwords validators.Validator
	Lockout   *validators.LockoutOptions
	Config    ConfigService
	Sessions  SessionService
	Recorder  RecorderService
	Roles     RoleHierarchy
}

type userService struct {
	users     store.UserRepository
	hasher    crypto.PasswordHasher
	passwords validators.Validator
	lockout   *validators.LockoutOptions
	config    ConfigService
	sessions  SessionService
	recorder  RecorderService
	roles     RoleHierarchy

	logger *logger.Logger
}

func NewUserService(deps UserDependencies, logger *logger.Logger) UserService {
	return &userService{
		users:     deps.Users,
		hasher:    deps.Hasher,
		passwords: deps.Passwords,
		lockout:   deps.Lockout,
		config:    deps.Config,
		sessions:  deps.Sessions,
		recorder:  deps.Recorder,
		roles:     deps.Roles,
		logger:    logger,
	}
}

// CreateUser provisions an account that must set its own password on first
// sign-in.
func (u *userService) CreateUser(ctx context.Context, actor models.Identity, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.roles.Check(req.Roles); err != nil {
		return models.User{}, err
	}
	if !u.roles.CanManage(actor.Roles, req.Roles) {
		return models.User{}, fmt.Errorf("%w: cannot grant %q", ErrForbidden, u.roles.Highest(req.Roles))
	}
	if err := u.passwords.Validate(ctx, req.Password); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}

	theme, ok := u.config.Get(ctx, models.KeyThemeDefault)
	if !ok || !models.ValidTheme(theme) {
		theme = models.ThemeAuto
	}

	created, err := u.users.CreateUser(ctx, models.User{
		Email:              strings.TrimSpace(req.Email),
		DisplayName:        strings.TrimSpace(req.DisplayName),
		PasswordHash:       hash,
		SecurityStamp:      newSecurityStamp(),
		MustChangePassword: true,
		LockoutEnabled:     u.lockout.NewUsersLockoutEnabled(),
		PreferredTheme:     theme,
		Roles:              req.Roles,
	})
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	created.HighestRole = u.roles.Highest(created.Roles)

	u.audit(ctx, models.AuditRecord{
		SubjectUserID:  created.UserID,
		SubjectEmail:   created.Email,
		ModifierUserID: actor.UserID,
		ModifierEmail:  actor.Email,
		Action:         models.AuditUserCreated,
		Changes:        "account created",
		NewValues:      marshalValues(map[string]any{"email": created.Email, "display_name": created.DisplayName, "roles": created.Roles}),
	})

	log.Info().Int64("user_id", created.UserID).Int64("actor_id", actor.UserID).Msg("user created")
	return created, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.users.ListUsers(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	for i := range users {
		users[i].HighestRole = u.roles.Highest(users[i].Roles)
	}
	return users, nil
}

// DeleteUser removes the account and everything about it. The audit row is
// filed under the actor because rows about the deleted user cascade away.
func (u *userService) DeleteUser(ctx context.Context, actor models.Identity, userID int64) error {
	log := logger.FromContext(ctx)

	if actor.UserID == userID {
		return fmt.Errorf("%w: cannot delete your own account", ErrInvalidInput)
	}

	target, err := u.manageable(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err = u.users.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return mapStoreError(err)
	}

	u.audit(ctx, models.AuditRecord{
		SubjectUserID:  actor.UserID,
		SubjectEmail:   actor.Email,
		ModifierUserID: actor.UserID,
		ModifierEmail:  actor.Email,
		Action:         models.AuditUserDeleted,
		Changes:        fmt.Sprintf("deleted user %d", target.UserID),
		OldValues:      marshalValues(map[string]any{"user_id": target.UserID, "email": target.Email, "roles": target.Roles}),
	})

	log.Info().Int64("user_id", userID).Int64("actor_id", actor.UserID).Msg("user deleted")
	return nil
}

func (u *userService) SetRoles(ctx context.Context, actor models.Identity, userID int64, roles []string) error {
	if err := u.roles.Check(roles); err != nil {
		return err
	}

	target, err := u.manageable(ctx, actor, userID)
	if err != nil {
		return err
	}
	if !u.roles.CanManage(actor.Roles, roles) {
		return fmt.Errorf("%w: cannot grant %q", ErrForbidden, u.roles.Highest(roles))
	}

	if err = u.users.SetRoles(ctx, userID, roles); err != nil {
		return mapStoreError(err)
	}

	u.audit(ctx, models.AuditRecord{
		SubjectUserID:  target.UserID,
		SubjectEmail:   target.Email,
		ModifierUserID: actor.UserID,
		ModifierEmail:  actor.Email,
		Action:         models.AuditRolesChanged,
		Changes:        "roles replaced",
		OldValues:      marshalValues(target.Roles),
		NewValues:      marshalValues(roles),
	})
	return nil
}

// ResetPassword sets a temporary password, forces a change on next sign-in
// and signs the user out everywhere.
func (u *userService) ResetPassword(ctx context.Context, actor models.Identity, userID int64, req models.AdminResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	target, err := u.manageable(ctx, actor, userID)
	if err != nil {
		return err
	}
	if err = u.passwords.Validate(ctx, req.NewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*userService.ResetPassword").Msg("error hashing password")
		return err
	}

	if err = u.users.UpdatePassword(ctx, userID, hash, newSecurityStamp(), nil, true); err != nil {
		return mapStoreError(err)
	}
	if err = u.users.SetLockoutEnd(ctx, userID, nil); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("error clearing lockout after password reset")
	}
	if _, err = u.sessions.RevokeAll(ctx, userID); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("error revoking sessions after password reset")
	}

	u.audit(ctx, models.AuditRecord{
		SubjectUserID:  target.UserID,
		SubjectEmail:   target.Email,
		ModifierUserID: actor.UserID,
		ModifierEmail:  actor.Email,
		Action:         models.AuditPasswordReset,
		Changes:        "temporary password set by an administrator",
	})

	log.Info().Int64("user_id", userID).Int64("actor_id", actor.UserID).Msg("password reset by administrator")
	return nil
}

// manageable loads the target and checks that actor outranks it.
func (u *userService) manageable(ctx context.Context, actor models.Identity, userID int64) (models.User, error) {
	target, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	if !u.roles.CanManage(actor.Roles, target.Roles) {
		return models.User{}, fmt.Errorf("%w: insufficient rank to manage user %d", ErrForbidden, userID)
	}
	return target, nil
}

func (u *userService) audit(ctx context.Context, record models.AuditRecord) {
	if err := u.recorder.RecordAudit(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("action", record.Action).Msg("audit entry was not recorded")
	}
}

func marshalValues(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
