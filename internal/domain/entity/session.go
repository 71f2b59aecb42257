package entity

import "time"

// Session is an authenticated visitor's locally persisted credential state.
// A nil *Session means the visitor is anonymous.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExpiredAt reports whether the credential is past its expiry at the given
// instant. An expired session is equivalent to no session at all.
func (s *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsAdmin reports whether the session carries staff privileges.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
