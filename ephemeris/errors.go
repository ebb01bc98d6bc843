package ephemeris

import "errors"

// ErrNoSource is returned when every configured source failed and the
// arithmetic fallback is disabled.
var ErrNoSource = errors.New("no ephemeris data source available")
