// Package domain holds ports for the digest worker
package domain

import "context"

// RunnerPort drives the digest worker
type RunnerPort interface {
	// Run blocks until ctx is done, firing the digest on schedule
	Run(ctx context.Context) error

	// RunOnce generates pending summaries for the current local day
	RunOnce(ctx context.Context) error
}
