// SPDX-License-Identifier: MIT
// Package constant: sentinel error set.
// Every message is prefixed with "constant: ..." and every sentinel wraps one
// of the phiverify taxonomy classes, so callers can match either the local
// sentinel or the class via errors.Is.

package constant

import (
	"fmt"

	"github.com/jtrag/phiverify"
)

var (
	// ErrUnknownName is returned by Get for a name the registry does not hold.
	ErrUnknownName = fmt.Errorf("constant: unknown constant name: %w", phiverify.ErrConfiguration)

	// ErrBadPrecision is returned by New for a non-positive precision or one
	// beyond MaxPrecision.
	ErrBadPrecision = fmt.Errorf("constant: precision out of range: %w", phiverify.ErrConfiguration)
)
