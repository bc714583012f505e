// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/crypto"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

// Lifetimes of the auxiliary tokens.
const (
	PendingSignInTTL  = 5 * time.Minute
	RememberDeviceTTL = 30 * 24 * time.Hour
)

// authService orchestrates sign-in across lockout, 2FA, expiration, sessions
// and the recorder. Every token it mints carries the user's security stamp
// and dies with it.
type authService struct {
	users      store.UserRepository
	hasher     crypto.PasswordHasher
	lockout    LockoutService
	expiration PasswordExpirationService
	twoFactor  TwoFactorService
	sessions   SessionService
	recorder   RecorderService
	metrics    *metrics.Metrics
	sessionIDs *utils.UUIDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	dummyOnce sync.Once
	dummyHash string

	now    func() time.Time
	logger *logger.Logger
}

// AuthDependencies are the collaborators of the sign-in flow.
type AuthDependencies struct {
	Users      store.UserRepository
	Hasher     crypto.PasswordHasher
	Lockout    LockoutService
	Expiration PasswordExpirationService
	TwoFactor  TwoFactorService
	Sessions   SessionService
	Recorder   RecorderService
	Metrics    *metrics.Metrics
}

func NewAuthService(deps AuthDependencies, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         deps.Users,
		hasher:        deps.Hasher,
		lockout:       deps.Lockout,
		expiration:    deps.Expiration,
		twoFactor:     deps.TwoFactor,
		sessions:      deps.Sessions,
		recorder:      deps.Recorder,
		metrics:       deps.Metrics,
		sessionIDs:    utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// signIn carries the request details through the final step.
type signIn struct {
	persistent        bool
	rememberDevice    bool
	requiredTwoFactor bool
	clientIP          string
	userAgent         string
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*authService.Login").Msg("error loading user")
			return models.LoginResult{}, mapStoreError(err)
		}
		// spend the same time as a real verification
		a.verifyDummy(req.Password)
		a.metrics.LoginAttempt(metrics.LoginInvalidCredentials)
		return models.LoginResult{}, ErrInvalidCredentials
	}

	if user.IsLockedOut(a.now()) {
		a.recordFailure(ctx, user, models.FailureLockedOut, false, req.ClientIP, req.UserAgent)
		a.metrics.LoginAttempt(metrics.LoginLockedOut)
		return models.LoginResult{}, ErrLockedOut
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is unreadable")
	}
	if !ok {
		locked, err := a.lockout.RegisterFailure(ctx, user)
		if err != nil {
			return models.LoginResult{}, err
		}
		a.recordFailure(ctx, user, models.FailureInvalidPassword, false, req.ClientIP, req.UserAgent)
		if locked {
			a.metrics.LoginAttempt(metrics.LoginLockedOut)
			return models.LoginResult{}, ErrLockedOut
		}
		a.metrics.LoginAttempt(metrics.LoginInvalidCredentials)
		return models.LoginResult{}, ErrInvalidCredentials
	}

	attempt := signIn{
		persistent: req.RememberMe,
		clientIP:   req.ClientIP,
		userAgent:  req.UserAgent,
	}

	if user.TwoFactorEnabled {
		if a.rememberedDevice(user, req.RememberDeviceToken) {
			attempt.requiredTwoFactor = true
			return a.finishSignIn(ctx, user, attempt)
		}

		pending, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, PendingSignInTTL, a.tokenSignKey, models.TokenClaims{
			Purpose:    models.PurposeTwoFactor,
			Stamp:      user.SecurityStamp,
			Persistent: req.RememberMe,
		})
		if err != nil {
			log.Err(err).Str("func", "*authService.Login").Msg("error issuing pending sign-in token")
			return models.LoginResult{}, err
		}

		a.metrics.LoginAttempt(metrics.LoginTwoFactorRequired)
		return models.LoginResult{
			Status:       models.LoginRequiresTwoFactor,
			PendingToken: pending.SignedString,
		}, nil
	}

	return a.finishSignIn(ctx, user, attempt)
}

func (a *authService) CompleteTwoFactor(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error) {
	user, pending, err := a.pendingSignIn(ctx, req.PendingToken)
	if err != nil {
		return models.LoginResult{}, err
	}

	result, err := a.twoFactor.SignInSecondFactor(ctx, pending, req.Code)
	if err != nil {
		return models.LoginResult{}, err
	}

	switch result {
	case models.SignInSucceeded:
		return a.finishSignIn(ctx, user, signIn{
			persistent:        pending.Persistent,
			rememberDevice:    req.RememberDevice,
			requiredTwoFactor: true,
			clientIP:          req.ClientIP,
			userAgent:         req.UserAgent,
		})
	case models.SignInLockedOut:
		a.recordFailure(ctx, user, models.FailureLockedOut, true, req.ClientIP, req.UserAgent)
		a.metrics.LoginAttempt(metrics.LoginLockedOut)
		return models.LoginResult{}, ErrLockedOut
	case models.SignInInvalidCode:
		a.recordFailure(ctx, user, models.FailureInvalid2FACode, true, req.ClientIP, req.UserAgent)
		a.metrics.LoginAttempt(metrics.LoginInvalidCode)
		return models.LoginResult{}, ErrInvalidCode
	default:
		return models.LoginResult{}, ErrUnauthorized
	}
}

// CompleteRecovery redeems a recovery code in place of the authenticator
// code. A wrong code counts towards lockout like any other failure.
func (a *authService) CompleteRecovery(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error) {
	user, pending, err := a.pendingSignIn(ctx, req.PendingToken)
	if err != nil {
		return models.LoginResult{}, err
	}

	if user.IsLockedOut(a.now()) {
		a.recordFailure(ctx, user, models.FailureLockedOut, true, req.ClientIP, req.UserAgent)
		a.metrics.LoginAttempt(metrics.LoginLockedOut)
		return models.LoginResult{}, ErrLockedOut
	}

	result, err := a.twoFactor.RedeemRecoveryCode(ctx, user.UserID, req.Code)
	if err != nil {
		return models.LoginResult{}, err
	}
	if result == models.SignInSucceeded {
		return a.finishSignIn(ctx, user, signIn{
			persistent:        pending.Persistent,
			requiredTwoFactor: true,
			clientIP:          req.ClientIP,
			userAgent:         req.UserAgent,
		})
	}

	locked, err := a.lockout.RegisterFailure(ctx, user)
	if err != nil {
		return models.LoginResult{}, err
	}
	a.recordFailure(ctx, user, models.FailureInvalidRecovery, true, req.ClientIP, req.UserAgent)
	if locked {
		a.metrics.LoginAttempt(metrics.LoginLockedOut)
		return models.LoginResult{}, ErrLockedOut
	}
	a.metrics.LoginAttempt(metrics.LoginInvalidCode)
	return models.LoginResult{}, ErrInvalidCode
}

func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	if identity.SessionID == "" {
		return nil
	}
	if err := a.sessions.Revoke(ctx, identity.SessionID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("user_id", identity.UserID).Str("session_id", identity.SessionID).Msg("signed out")
	return nil
}

// Authenticate accepts a token only while its session is active and the
// user's security stamp is the one it was minted under.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, a.tokenSignKey, a.tokenIssuer, models.PurposeAccess)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.users.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Identity{}, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
		}
		return models.Identity{}, mapStoreError(err)
	}
	if user.SecurityStamp != token.Claims.Stamp {
		return models.Identity{}, fmt.Errorf("%w: security stamp changed", ErrUnauthorized)
	}

	session, err := a.sessions.Get(ctx, token.Claims.SessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			return models.Identity{}, fmt.Errorf("%w: unknown session", ErrUnauthorized)
		}
		return models.Identity{}, err
	}
	if !session.IsActive || session.UserID != user.UserID {
		return models.Identity{}, fmt.Errorf("%w: session revoked", ErrUnauthorized)
	}
	if session.ExpiresAt != nil && !session.ExpiresAt.After(a.now()) {
		return models.Identity{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	return models.Identity{
		UserID:             user.UserID,
		Email:              user.Email,
		SessionID:          session.SessionID,
		Roles:              user.Roles,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func (a *authService) RefreshToken(ctx context.Context, identity models.Identity) (models.LoginResult, error) {
	user, err := a.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return models.LoginResult{}, mapStoreError(err)
	}

	session, err := a.sessions.Get(ctx, identity.SessionID)
	if err != nil {
		return models.LoginResult{}, err
	}
	if !session.IsActive || session.UserID != user.UserID {
		return models.LoginResult{}, ErrUnauthorized
	}

	token, err := a.issueAccessToken(user, session.SessionID, session.IsPersistent)
	if err != nil {
		return models.LoginResult{}, err
	}

	expiresAt := token.Claims.ExpiresAt.Time
	return models.LoginResult{
		Status:              models.LoginSucceeded,
		AccessToken:         token.SignedString,
		ExpiresAt:           &expiresAt,
		SessionID:           session.SessionID,
		MustChangePassword:  user.MustChangePassword,
		DaysUntilExpiration: a.expiration.DaysUntilExpiration(ctx, user),
	}, nil
}

// finishSignIn runs once every factor has been verified.
func (a *authService) finishSignIn(ctx context.Context, user models.User, attempt signIn) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.users.ResetFailedAccess(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "*authService.finishSignIn").Int64("user_id", user.UserID).Msg("error resetting failed access count")
		return models.LoginResult{}, mapStoreError(err)
	}

	mustChange := user.MustChangePassword
	if !mustChange && a.expiration.IsExpired(ctx, user) {
		if err := a.users.SetMustChangePassword(ctx, user.UserID, true); err != nil {
			log.Err(err).Str("func", "*authService.finishSignIn").Int64("user_id", user.UserID).Msg("error flagging expired password")
			return models.LoginResult{}, mapStoreError(err)
		}
		mustChange = true
		log.Info().Int64("user_id", user.UserID).Msg("password expired, change required")
	}

	session, err := a.sessions.CreateOrRefresh(ctx, user.UserID, a.sessionIDs.Generate(), attempt.clientIP, attempt.userAgent, attempt.persistent)
	if err != nil {
		return models.LoginResult{}, err
	}

	token, err := a.issueAccessToken(user, session.SessionID, attempt.persistent)
	if err != nil {
		log.Err(err).Str("func", "*authService.finishSignIn").Msg("error issuing access token")
		return models.LoginResult{}, err
	}

	expiresAt := token.Claims.ExpiresAt.Time
	result := models.LoginResult{
		Status:              models.LoginSucceeded,
		AccessToken:         token.SignedString,
		ExpiresAt:           &expiresAt,
		SessionID:           session.SessionID,
		MustChangePassword:  mustChange,
		DaysUntilExpiration: a.expiration.DaysUntilExpiration(ctx, user),
	}

	if attempt.rememberDevice {
		remember, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, RememberDeviceTTL, a.tokenSignKey, models.TokenClaims{
			Purpose: models.PurposeRememberDevice,
			Stamp:   user.SecurityStamp,
		})
		if err != nil {
			log.Err(err).Str("func", "*authService.finishSignIn").Msg("error issuing remember-device token")
			return models.LoginResult{}, err
		}
		result.RememberDeviceToken = remember.SignedString
	}

	a.record(ctx, models.LoginAttempt{
		UserID:            user.UserID,
		Email:             user.Email,
		Success:           true,
		IPAddress:         attempt.clientIP,
		UserAgent:         attempt.userAgent,
		RequiredTwoFactor: attempt.requiredTwoFactor,
	})
	a.metrics.LoginAttempt(metrics.LoginSucceeded)

	log.Info().Int64("user_id", user.UserID).Str("session_id", session.SessionID).Bool("persistent", attempt.persistent).Msg("signed in")
	return result, nil
}

func (a *authService) issueAccessToken(user models.User, sessionID string, persistent bool) (models.Token, error) {
	duration := a.tokenDuration
	if persistent {
		duration = models.PersistentSessionTTL
	}

	return utils.GenerateJWTToken(a.tokenIssuer, user.UserID, duration, a.tokenSignKey, models.TokenClaims{
		Purpose:    models.PurposeAccess,
		SessionID:  sessionID,
		Stamp:      user.SecurityStamp,
		Persistent: persistent,
	})
}

// pendingSignIn turns a pending token back into the user and the context of
// the password step.
func (a *authService) pendingSignIn(ctx context.Context, pendingToken string) (models.User, models.PendingSignIn, error) {
	token, err := utils.ValidateAndParseJWTToken(pendingToken, a.tokenSignKey, a.tokenIssuer, models.PurposeTwoFactor)
	if err != nil {
		return models.User{}, models.PendingSignIn{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.users.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, models.PendingSignIn{}, ErrUnauthorized
		}
		return models.User{}, models.PendingSignIn{}, mapStoreError(err)
	}
	if user.SecurityStamp != token.Claims.Stamp {
		return models.User{}, models.PendingSignIn{}, fmt.Errorf("%w: security stamp changed", ErrUnauthorized)
	}

	return user, models.PendingSignIn{UserID: user.UserID, Persistent: token.Claims.Persistent}, nil
}

func (a *authService) rememberedDevice(user models.User, rememberToken string) bool {
	if rememberToken == "" {
		return false
	}

	token, err := utils.ValidateAndParseJWTToken(rememberToken, a.tokenSignKey, a.tokenIssuer, models.PurposeRememberDevice)
	if err != nil {
		return false
	}
	return token.UserID == user.UserID && token.Claims.Stamp == user.SecurityStamp
}

func (a *authService) verifyDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(uuid.NewString())
		if err != nil {
			a.logger.Err(err).Str("func", "*authService.verifyDummy").Msg("error preparing dummy hash")
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash != "" {
		_, _ = a.hasher.Verify(password, a.dummyHash)
	}
}

func (a *authService) recordFailure(ctx context.Context, user models.User, reason string, requiredTwoFactor bool, clientIP, userAgent string) {
	a.record(ctx, models.LoginAttempt{
		UserID:            user.UserID,
		Email:             user.Email,
		FailureReason:     reason,
		RequiredTwoFactor: requiredTwoFactor,
		IPAddress:         clientIP,
		UserAgent:         userAgent,
	})
}

// record never fails the sign-in it describes.
func (a *authService) record(ctx context.Context, attempt models.LoginAttempt) {
	if err := a.recorder.RecordLogin(ctx, attempt); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", attempt.UserID).Msg("login attempt was not recorded")
	}
}
