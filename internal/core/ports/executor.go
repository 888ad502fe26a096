package ports

import (
	"context"

	"go.trai.ch/anybuild/internal/core/domain"
)

// Executor defines the interface for delegated execution.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation to completion and returns its exit code.
	//
	// A non-zero exit code is not an error. An error is returned only when the
	// program cannot be resolved or started.
	Execute(ctx context.Context, inv domain.Invocation) (int, error)
}
