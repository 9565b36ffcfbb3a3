package models

import (
	"strings"
	"time"
)

// Role is the part a user plays on the platform
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// RoleForEmail infers a role from an email address: any address containing
// "teacher" is a teacher, everyone else is a student.
func RoleForEmail(email string) Role {
	if strings.Contains(strings.ToLower(email), string(RoleTeacher)) {
		return RoleTeacher
	}
	return RoleStudent
}

// DashboardPath returns where a user of this role lands after login
func (r Role) DashboardPath() string {
	return "/" + string(r) + "/dashboard"
}

// User represents a logged-in account. Login is mocked, so users only
// exist for the lifetime of their session token.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session represents an authenticated session
type Session struct {
	ID        string
	User      User
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
