// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth holds the client's authentication state.
//
// The Store owns the single active Identity (the logged-in username),
// persists it across restarts through a Storage backend, and wraps the
// service's login/signup calls. Views never touch the storage directly:
// the Store's login/logout paths are the only writers, and the persisted
// value is read exactly once, at startup.
package auth
