package repo

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
)

const (
	CategoryInternalError     = "valkey_internal_error"
	CategoryValkeyClientError = "valkey_client"
)

// NewValkeyClientError categorizes a valkey failure, flagging the transient ones as external dependency errors.
func NewValkeyClientError(err error, reason string, args ...interface{}) error {
	if IsValkeyRetryable(err) {
		return common.NewErrProcessingError(common.NewExternalDependencyError(err, "valkey"), CategoryValkeyClientError, nil, reason, args...)
	}

	return common.NewErrProcessingError(err, CategoryValkeyClientError, nil, reason, args...)
}

func IsValkeyRetryable(err error) bool {
	// Network error
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// Valkey specfic error
	vErr, isValkeyError := valkey.IsValkeyErr(err)
	if !isValkeyError {
		return false
	}

	return vErr.IsTryAgain() || vErr.IsClusterDown()
}
