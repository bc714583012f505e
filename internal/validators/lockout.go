// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"sync/atomic"

	"github.com/MKhiriev/airline-guard/models"
)

// LockoutOptions is the live lockout policy shared by the sign-in flow and
// user provisioning.
type LockoutOptions struct {
	policy atomic.Pointer[models.LockoutPolicy]
}

func NewLockoutOptions() *LockoutOptions {
	o := &LockoutOptions{}
	o.SetPolicy(models.DefaultLockoutPolicy())
	return o
}

func (o *LockoutOptions) SetPolicy(policy models.LockoutPolicy) {
	o.policy.Store(&policy)
}

func (o *LockoutOptions) Policy() models.LockoutPolicy {
	return *o.policy.Load()
}

// NewUsersLockoutEnabled is the LockoutEnabled flag given to accounts
// created while this policy is in effect.
func (o *LockoutOptions) NewUsersLockoutEnabled() bool {
	return o.Policy().Enabled()
}
