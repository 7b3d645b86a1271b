// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login implements the login and signup forms. Both run through the
// same model; a mode flag decides which credential operation a submit maps
// to and which copy the view shows.
package login
