package probe

import (
	"context"
	"time"
)

// CheckType represents the type of verification check
type CheckType string

const (
	CheckTypeDNS CheckType = "dns"
)

// Result represents the outcome of a verification check
type Result struct {
	Healthy   bool
	Message   string
	CheckedAt time.Time
	Duration  time.Duration
}

// Checker is the interface that all verification checkers implement
type Checker interface {
	// Check performs the verification and returns the result
	Check(ctx context.Context) Result

	// Type returns the type of verification check
	Type() CheckType
}
