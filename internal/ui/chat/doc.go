// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the TUI.
//
// This is the core interaction state machine of the client. A mounted
// model loads one session's history, then runs a per-send sub-machine:
// the user's message is appended to the timeline optimistically, a
// transient typing indicator occupies the assistant's slot, and the
// indicator is reconciled against the authoritative reply or removed on
// failure. The user's own message is never retracted, even when the reply
// fails; they did send it.
//
// Timeline state lives only in memory and only for one mounted model.
// Navigating to another session mounts a fresh model; replies arriving
// for a torn-down model are discarded by instance ID.
package chat
