package users

import "time"

type User struct {
	ID       int64
	Name     string
	LastName string
	Email    string // trim + lower, único

	// PasswordHash es bcrypt; nunca se serializa.
	PasswordHash string

	CreatedAt time.Time
}
