// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/airline-guard/models"
)

// Field names accepted by [AccountValidator].
const (
	FieldEmail       = "email"
	FieldDisplayName = "display_name"
	FieldRoles       = "roles"
	FieldTheme       = "theme"
	FieldCode        = "code"
	FieldToken       = "token"
	FieldPassword    = "password"
	FieldValues      = "values"
)

const maxDisplayNameLength = 256

// AccountValidator validates the non-password parts of account requests.
type AccountValidator struct{}

func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return validateLogin(value, fields...)
	case *models.LoginRequest:
		return validateLogin(*value, fields...)
	case models.CreateUserRequest:
		return validateCreateUser(value, fields...)
	case *models.CreateUserRequest:
		return validateCreateUser(*value, fields...)
	case models.SetRolesRequest:
		return validateRoles(value.Roles)
	case *models.SetRolesRequest:
		return validateRoles(value.Roles)
	case models.ThemeRequest:
		return validateTheme(value.Theme)
	case *models.ThemeRequest:
		return validateTheme(value.Theme)
	case models.CodeRequest:
		return validateCode(value.Code)
	case *models.CodeRequest:
		return validateCode(value.Code)
	case models.TwoFactorLoginRequest:
		return validateTwoFactorLogin(value, fields...)
	case *models.TwoFactorLoginRequest:
		return validateTwoFactorLogin(*value, fields...)
	case models.ForgotPasswordRequest:
		return validateEmail(value.Email)
	case *models.ForgotPasswordRequest:
		return validateEmail(value.Email)
	case models.ResetPasswordRequest:
		return validateToken(value.Token)
	case *models.ResetPasswordRequest:
		return validateToken(value.Token)
	case models.ConfigUpdateRequest:
		return validateConfigUpdate(value)
	case *models.ConfigUpdateRequest:
		return validateConfigUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

func validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateCreateUser(req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldDisplayName, FieldRoles}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldDisplayName:
			if len(req.DisplayName) > maxDisplayNameLength {
				return ErrDisplayNameLength
			}
		case FieldRoles:
			if err := validateRoles(req.Roles); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateTwoFactorLogin(req models.TwoFactorLoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldCode}
	}

	for _, field := range fields {
		switch field {
		case FieldToken:
			if err := validateToken(req.PendingToken); err != nil {
				return err
			}
		case FieldCode:
			if err := validateCode(req.Code); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validateRoles(roles []string) error {
	if len(roles) == 0 {
		return ErrEmptyRoles
	}
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if strings.TrimSpace(role) == "" {
			return ErrEmptyRoles
		}
		if _, dup := seen[role]; dup {
			return ErrDuplicateRole
		}
		seen[role] = struct{}{}
	}
	return nil
}

func validateTheme(theme string) error {
	if !models.ValidTheme(theme) {
		return ErrInvalidTheme
	}
	return nil
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}
	return nil
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	return nil
}

func validateConfigUpdate(req models.ConfigUpdateRequest) error {
	if len(req.Values) == 0 {
		return ErrEmptyConfigValues
	}
	return nil
}
