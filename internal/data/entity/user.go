package entity

import "time"

type User struct {
	Base
	Email                      string     `db:"email"`
	PasswordHash               string     `db:"password"`
	IsVerified                 bool       `db:"is_verified"`
	VerificationToken          *string    `db:"verification_token"`
	VerificationTokenExpiresAt *time.Time `db:"verification_token_expires_at"`
}

// VerificationExpired reports whether the pending verification token is past its expiry.
func (u *User) VerificationExpired(now time.Time) bool {
	return u.VerificationTokenExpiresAt == nil || now.After(*u.VerificationTokenExpiresAt)
}

// MarkVerified clears the one-time verification token.
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.VerificationToken = nil
	u.VerificationTokenExpiresAt = nil
}
