// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the personal assistant
// service.
//
// The service is the source of truth for accounts, sessions, and message
// history. This package covers its full surface:
//
//   - Login / Signup (POST /auth/login, /auth/signup)
//   - ListSessions (GET /session/{username})
//   - CreateSession (POST /session/)
//   - GetHistory (GET /session/get/{session_id})
//   - SendMessage (POST /chat/)
//   - GetFacts (GET /chat/userfacts)
//
// Failures are reported as *Error carrying the HTTP status and the
// server's detail message when one was provided; IsNotFound and
// IsAuthFailed classify the cases the views treat specially.
package api
