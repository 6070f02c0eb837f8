package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// schema is applied at startup. Statements are idempotent so restarting
// the server against an existing database is safe.
//
// References between tables are by identifier only; owner validity is
// an application-level check. The unique indexes on users.email,
// likes(idea_id, owner_id) and profiles.owner_id are load-bearing:
// concurrent duplicate inserts are resolved by the database, not by
// the application's read-then-write checks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hashed TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ideas (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	image_url TEXT NOT NULL,
	description TEXT NOT NULL,
	concise_content TEXT NOT NULL,
	category TEXT NOT NULL,
	owner_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_ideas_category ON ideas (category);
CREATE INDEX IF NOT EXISTS idx_ideas_created_at ON ideas (created_at DESC);

CREATE TABLE IF NOT EXISTS comments (
	id UUID PRIMARY KEY,
	idea_id UUID NOT NULL,
	email TEXT NOT NULL,
	content TEXT NOT NULL,
	owner_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_idea_id ON comments (idea_id);

CREATE TABLE IF NOT EXISTS likes (
	id UUID PRIMARY KEY,
	idea_id UUID NOT NULL,
	owner_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (idea_id, owner_id)
);

CREATE TABLE IF NOT EXISTS profiles (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL,
	profile_picture TEXT NOT NULL,
	gender TEXT NOT NULL,
	bio TEXT NOT NULL,
	years INT NOT NULL,
	more TEXT NOT NULL,
	email TEXT NOT NULL,
	owner_id UUID NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate bootstraps the schema.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Database schema is up to date")
	return nil
}
