package driven

import "time"

// Clock supplies the current instant. Implementations must read the wall
// clock on every call so each evaluation sees the real current time.
type Clock interface {
	Now() time.Time
}
