// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a non-blocking operation cannot proceed now.
//
// For TryPut: the pipeline is full (PolicyWait only)
// For TryGet: the pipeline is empty
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later (with backoff or yield) or fall back to the blocking call.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrClosed is returned by pipeline operations once the pipeline is
	// closed. It is a normal termination signal.
	ErrClosed = errors.New("syncx: pipeline closed")

	// ErrTooLarge is returned when an allocation can never fit in one page.
	// Allocations never span pages, so retrying cannot succeed.
	ErrTooLarge = errors.New("syncx: allocation exceeds page size")

	// ErrPagerExhausted is returned when the page limit is reached and no
	// free page is available. A Recycle or Reset makes room again.
	ErrPagerExhausted = errors.New("syncx: pager page limit reached")

	// ErrPagerReleased is returned when a released pager is used.
	ErrPagerReleased = errors.New("syncx: pager released")
)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsClosed reports whether err is or wraps ErrClosed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
