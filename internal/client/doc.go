// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the journal application runtime.
//
// It opens the configured storage, wires the journal services and the save
// worker, runs the terminal UI and locks the journal on the way out so
// pending edits are written before the process exits.
package client
