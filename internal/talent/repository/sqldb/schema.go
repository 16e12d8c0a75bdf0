package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the subset of the platform schema the assistant reads. Production
// MySQL databases already carry these tables; CreateSchema exists for SQLite
// development databases and tests.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		address VARCHAR(255),
		description TEXT,
		website_link VARCHAR(255),
		verification_status VARCHAR(32) DEFAULT 'pending'
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY,
		company_id INTEGER NOT NULL,
		position VARCHAR(255),
		technology VARCHAR(255),
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS seekers (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		description TEXT,
		skills TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		is_active INTEGER DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS seeker_skill (
		seeker_id INTEGER NOT NULL,
		skill_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id INTEGER PRIMARY KEY,
		internship_seeker_id INTEGER NOT NULL,
		post_id INTEGER,
		status VARCHAR(32) DEFAULT 'pending'
	)`,
}

// CreateSchema creates any missing table from Schema.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
