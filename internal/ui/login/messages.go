// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

// LoginResultMsg reports the outcome of a login attempt.
type LoginResultMsg struct {
	ID  string // issuing form instance
	Err error
}

// SignupResultMsg reports the outcome of a signup attempt.
type SignupResultMsg struct {
	ID  string
	Err error
}
