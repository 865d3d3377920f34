// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.
package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (junctions, chain length,
// buildings) below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadFloor indicates a floor index below 1, or a stairwell with fewer than
// two floors to join.
var ErrBadFloor = errors.New("builder: invalid floor")

// ErrConstructFailed indicates a constructor could not complete: a nil
// constructor, no corridor to attach to, or a rejected map mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
