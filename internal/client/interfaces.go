// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a front end over an open journal session. Run blocks until the
// user leaves; the session is locked and closed before it returns.
type Client interface {
	Run(ctx context.Context) error
}
