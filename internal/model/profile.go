package model

import (
	"errors"
	"time"
)

// Gender values accepted on profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// IsValidGender reports whether g is an accepted gender value.
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// Profile holds an account's public profile. An account has at most
// one profile (owner_id is unique).
type Profile struct {
	ID             string    `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	ProfilePicture string    `db:"profile_picture" json:"profile_picture"`
	Gender         string    `db:"gender" json:"gender"`
	Bio            string    `db:"bio" json:"bio"`
	Years          int       `db:"years" json:"years"`
	More           string    `db:"more" json:"more"`
	Email          string    `db:"email" json:"email"`
	OwnerID        string    `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ProfileRequest is the request body for creating a profile.
type ProfileRequest struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	Gender         string `json:"gender"`
	Bio            string `json:"bio"`
	Years          int    `json:"years"`
	More           string `json:"more"`
}

// MinProfileUsernameLength is the minimum username length in runes.
const MinProfileUsernameLength = 2

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)
