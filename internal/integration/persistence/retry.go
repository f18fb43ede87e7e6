// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"time"

	"github.com/lib/pq"

	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

// readTimeout bounds every store read. Reads also get a single retry on
// transient failures; writes do not, since a retried write could double-apply.
const readTimeout = 5 * time.Second

// undefinedTableCode is the PostgreSQL error code for a missing relation.
const undefinedTableCode = "42P01"

// connectionFailureClass is the PostgreSQL error class for connection exceptions.
const connectionFailureClass = "08"

// withReadRetry runs fn under a per-call timeout, retrying once when the
// failure looks transient.
func withReadRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := func() error {
		callCtx, cancel := context.WithTimeout(ctx, readTimeout)
		defer cancel()
		return fn(callCtx)
	}

	err := attempt()
	if err == nil || !isTransient(err) {
		return err
	}
	// The parent context may already be done; don't retry into it.
	if ctx.Err() != nil {
		return err
	}
	return attempt()
}

// isTransient reports whether the error is worth one retry.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == connectionFailureClass
	}
	return false
}

// translateSchemaError maps a missing budget table onto the structured
// schema-missing domain error. Any other error passes through unchanged.
func translateSchemaError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pq.ErrorCode(undefinedTableCode) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetSchemaMissing,
			"budget tables are not provisioned",
			domainerror.ErrBudgetSchemaMissing,
		)
	}
	return err
}
