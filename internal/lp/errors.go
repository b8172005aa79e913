package lp

import "errors"

// errPhase1Unbounded should be unreachable: phase 1 minimizes a sum of
// nonnegative artificial variables, which is bounded below by zero.
var errPhase1Unbounded = errors.New("lp: phase 1 reported unbounded, which should be impossible")
