// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks journal entries, entry patches and import
// records before they reach the repository.
//
// Validation is structural only: it never consults stored state, so a
// record that passes here can still be rejected by the repository (for
// example an update of an unknown entry id).
//
// Callers may restrict a check to named fields (see the Field* constants),
// which is how partial updates avoid tripping rules for fields they do not
// touch.
package validators

import "context"

// Validator validates entries, patches and import records.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
