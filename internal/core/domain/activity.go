package domain

import "time"

// ActivityEvent is an audit record of a user-visible action. Events are
// processed asynchronously; losing one never fails the request that
// produced it.
type ActivityEvent struct {
	Actor     string
	Action    string
	Target    string
	Timestamp time.Time
	Source    string
}
