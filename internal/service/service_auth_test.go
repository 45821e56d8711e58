// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/mock"
	"github.com/MKhiriev/go-calculator/internal/store"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "calculator-microservice"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockCredentialStore) {
	t.Helper()
	credentialStore := mock.NewMockCredentialStore(ctrl)

	svc := NewAuthService(credentialStore, config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop())

	return svc, credentialStore
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, credentialStore := newTestAuthService(t, ctrl)
	ctx := context.Background()

	credentialStore.EXPECT().
		FindByCredentials(ctx, "user1", "pass1").
		Return(models.User{Username: "user1", Password: "pass1"}, nil)

	user, err := svc.Login(ctx, "user1", "pass1")

	require.NoError(t, err)
	assert.Equal(t, "user1", user.Username)
}

func TestAuthService_Login_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, credentialStore := newTestAuthService(t, ctrl)
	ctx := context.Background()

	credentialStore.EXPECT().
		FindByCredentials(ctx, "user1", "wrong").
		Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.Login(ctx, "user1", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	assert.Equal(t, models.User{}, user)
}

func TestAuthService_Login_EmptyFields_NoStoreCall(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pass1"},
		{"empty password", "user1", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthService(t, ctrl)

			user, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
			assert.Equal(t, models.User{}, user)
		})
	}
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Username: "user1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Nil(t, token.ExpiresAt, "tokens never expire by default")

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user1", parsed.Username)
	assert.Equal(t, testIssuer, parsed.Issuer)
}

func TestAuthService_CreateToken_WithDuration(t *testing.T) {
	svc := NewAuthService(nil, config.App{
		TokenSignKey:  testSignKey,
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{Username: "user2"})
	require.NoError(t, err)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, time.Minute)
}

func TestAuthService_CreateToken_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken(testIssuer, "user1", 0, "another-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "user1", 0, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "user1", -time.Minute, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"foreign signature", otherKey.SignedString},
		{"foreign issuer", otherIssuer.SignedString},
		{"expired", expired.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthService(t, ctrl)

			token, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			assert.Empty(t, token.Username)
		})
	}
}

// ─────────────────────────────────────────────
// ResolveUser
// ─────────────────────────────────────────────

func TestAuthService_ResolveUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, credentialStore := newTestAuthService(t, ctrl)
	ctx := context.Background()

	credentialStore.EXPECT().
		FindByUsername(ctx, "user2").
		Return(models.User{Username: "user2", Password: "pass2"}, nil)

	user, err := svc.ResolveUser(ctx, models.Token{Username: "user2"})

	require.NoError(t, err)
	assert.Equal(t, "user2", user.Username)
}

func TestAuthService_ResolveUser_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, credentialStore := newTestAuthService(t, ctrl)
	ctx := context.Background()

	credentialStore.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.ResolveUser(ctx, models.Token{Username: "ghost"})

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
