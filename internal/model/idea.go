package model

import (
	"errors"
	"time"
)

// Idea categories. Every idea is filed under exactly one of these.
const (
	CategoryWorkout   = "workout"
	CategoryLifestyle = "lifestyle"
	CategoryFood      = "food"
	CategoryMindful   = "mindful"
)

// Category is an entry in the static category catalog served by
// GET /categories.
type Category struct {
	CategoryType  string `json:"category_type"`
	CategoryAbout string `json:"category_about"`
	ImageURL      string `json:"image_url"`
	ShortInfo     string `json:"short_info"`
}

// Categories is the fixed catalog, in display order.
var Categories = []Category{
	{
		CategoryType:  CategoryWorkout,
		CategoryAbout: "Workout",
		ImageURL:      "/images/categoryWorkout.jpg",
		ShortInfo:     "Effective and fast workouts to do at home. There will be as for all levels beginners to advance.",
	},
	{
		CategoryType:  CategoryLifestyle,
		CategoryAbout: "Lifestyle",
		ImageURL:      "/images/healthyLifeStyle.jpg",
		ShortInfo:     "Here you can find what you can change in daily routines and habits, to feel better.",
	},
	{
		CategoryType:  CategoryFood,
		CategoryAbout: "Food",
		ImageURL:      "/images/healthyFood.jpg",
		ShortInfo:     "You will find easy, healthy and simple recipes to try at home, and to adjust to your diet.",
	},
	{
		CategoryType:  CategoryMindful,
		CategoryAbout: "Mindful Set",
		ImageURL:      "/images/mindfulSet.png",
		ShortInfo:     "You will find tips about how to create a better connection between mind and body, how to meditate, how to do manifestations etc...",
	},
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryWorkout, CategoryLifestyle, CategoryFood, CategoryMindful:
		return true
	}
	return false
}

// Idea is a posted wellness tip.
type Idea struct {
	ID             string    `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	ImageURL       string    `db:"image_url" json:"image_url"`
	Description    string    `db:"description" json:"description"`
	ConciseContent string    `db:"concise_content" json:"concise_content"`
	Category       string    `db:"category" json:"category"`
	OwnerID        string    `db:"owner_id" json:"owner_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	// Joined field, populated when load=author is requested.
	Author *AuthorSummary `json:"author,omitempty"`
}

// AuthorSummary is the denormalized author info attached to ideas.
type AuthorSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdeaRequest is the request body for creating or updating an idea.
// Updates replace the full document, so the same payload is validated
// for both.
type IdeaRequest struct {
	Title          string `json:"title"`
	ImageURL       string `json:"image_url"`
	Description    string `json:"description"`
	ConciseContent string `json:"concise_content"`
	Category       string `json:"category"`
}

// Idea constraints
const (
	MinIdeaTitleLength       = 3
	MaxIdeaTitleLength       = 100
	MinIdeaDescriptionLength = 30
	MinIdeaConciseLength     = 10
	MaxIdeaConciseLength     = 30
)

// Idea errors
var (
	ErrIdeaNotFound = errors.New("idea not found")
	ErrNotIdeaOwner = errors.New("not the owner of this idea")
)
