package events

import "time"

// TypeUserRegistered is published by auth-service after a successful
// registration. The upper-cased form is historical and load-bearing: the
// notification classifier matches on the literal string.
const TypeUserRegistered = "USER_REGISTERED"

type UserRegistered struct {
	Metadata
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (*UserRegistered) Domain() Domain { return DomainUser }

func NewUserRegistered(userID int64, username, email, firstName, lastName, fullName string, registeredAt time.Time) *UserRegistered {
	return &UserRegistered{
		Metadata:     newMetadata(TypeUserRegistered, SourceAuthService),
		UserID:       userID,
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		FullName:     fullName,
		RegisteredAt: registeredAt,
	}
}
