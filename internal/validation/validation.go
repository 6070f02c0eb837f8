// Package validation checks request payloads against the named schemas
// before anything touches the store. Rules run in schema order and only
// the first violated rule's message is reported, which keeps the
// response shape identical for clients that display a single message.
package validation

import (
	"errors"
	"net/mail"
	"net/url"
	"unicode/utf8"

	"healthyideas/internal/model"
)

// Error is a schema violation carrying the first violated rule's message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError extracts a schema violation from err, if it is one.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func fail(message string) error {
	return &Error{Message: message}
}

// ValidateRegister checks the registration payload.
func ValidateRegister(req *model.RegisterRequest) error {
	if !isEmail(req.Email) {
		return fail("Invalid email address")
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		return fail("Password must be at least 6 characters")
	}
	return nil
}

// ValidateLogin checks the login payload.
func ValidateLogin(req *model.LoginRequest) error {
	if !isEmail(req.Email) {
		return fail("Invalid email address")
	}
	if req.Password == "" {
		return fail("Password is required")
	}
	return nil
}

// ValidateIdea checks an idea payload. Used for both create and update
// since updates replace the full document.
func ValidateIdea(req *model.IdeaRequest) error {
	if utf8.RuneCountInString(req.Title) < model.MinIdeaTitleLength {
		return fail("Title must be at least 3 characters")
	}
	if utf8.RuneCountInString(req.Title) > model.MaxIdeaTitleLength {
		return fail("Title must be at most 100 characters")
	}
	if !isAbsoluteURL(req.ImageURL) {
		return fail("Invalid image URL")
	}
	if utf8.RuneCountInString(req.Description) < model.MinIdeaDescriptionLength {
		return fail("Description must be at least 30 characters")
	}
	if utf8.RuneCountInString(req.ConciseContent) < model.MinIdeaConciseLength {
		return fail("Concise content must be at least 10 characters")
	}
	if utf8.RuneCountInString(req.ConciseContent) > model.MaxIdeaConciseLength {
		return fail("Concise content must be at most 30 characters")
	}
	if !model.IsValidCategory(req.Category) {
		return fail("Please select a valid category")
	}
	return nil
}

// ValidateComment checks a comment payload.
func ValidateComment(req *model.CreateCommentRequest) error {
	if utf8.RuneCountInString(req.Content) < model.MinCommentLength {
		return fail("Comment must be at least 5 characters")
	}
	if req.IdeaID == "" {
		return fail("ideaId is required")
	}
	return nil
}

// ValidateLike checks a like payload.
func ValidateLike(req *model.CreateLikeRequest) error {
	if req.IdeaID == "" {
		return fail("ideaId is required")
	}
	return nil
}

// ValidateProfile checks a profile payload.
func ValidateProfile(req *model.ProfileRequest) error {
	if utf8.RuneCountInString(req.Username) < model.MinProfileUsernameLength {
		return fail("Username must be at least 2 characters")
	}
	if !isAbsoluteURL(req.ProfilePicture) {
		return fail("Invalid image URL")
	}
	if !model.IsValidGender(req.Gender) {
		return fail("Please select a gender")
	}
	if req.Bio == "" {
		return fail("Bio is required")
	}
	if req.Years < 0 {
		return fail("Years must be at least 0")
	}
	if req.More == "" {
		return fail("More info is required")
	}
	return nil
}

// isEmail accepts a bare, syntactically valid address. Display names
// ("Foo <a@x.com>") are rejected.
func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// isAbsoluteURL requires a scheme and a host, so relative paths and
// bare filenames fail.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
