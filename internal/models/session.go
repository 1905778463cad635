package models

import "time"

// Session binds an admin browser session to the backend bearer token.
// The token is the only credential this frontend persists.
type Session struct {
	ID      int64
	UUID    string
	Token   string
	User    User
	Expires time.Time
}
