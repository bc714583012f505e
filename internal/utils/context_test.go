// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/airline-guard/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: 42, Email: "ops@example.com", SessionID: "s1", Roles: []string{"Admin"}}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.UserID != 42 || got.SessionID != "s1" {
		t.Errorf("unexpected identity %+v", got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	if _, ok := GetIdentityFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
