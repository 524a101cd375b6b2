// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the fetcher's per-dataset jobs.
//
// A Workers aggregate runs its workers one after another; a failing worker
// does not stop the ones after it, and all failures are returned joined.
package workers

import "context"

// Worker is one unit of fetcher work. Run blocks until the work is done.
type Worker interface {
	Run(ctx context.Context) error
}
