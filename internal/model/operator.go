// Copyright (c) 2026 Pressroom Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model holds domain constants and context types shared between the
// store, service, and handler layers.
package model

// Operator roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// OperatorContext identifies the operator performing a lifecycle operation.
// It is passed explicitly into service calls instead of being read from
// ambient request state.
type OperatorContext struct {
	ID      int64
	IsAdmin bool
}
