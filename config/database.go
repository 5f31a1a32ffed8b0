package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS transaction_statuses (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS transaction_categories (
			id UUID PRIMARY KEY,
			owner_id UUID REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(20) NOT NULL,
			icon VARCHAR(100) DEFAULT '',
			color VARCHAR(50) DEFAULT '',
			transaction_count INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS transaction_accounts (
			id UUID PRIMARY KEY,
			owner_id UUID REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			institution VARCHAR(255) DEFAULT '',
			color VARCHAR(50) DEFAULT '',
			transaction_count INTEGER NOT NULL DEFAULT 0
		)`,

		// category_id / account_id / status_id carry no foreign keys on
		// purpose: they are weak references. Deleting a category or account
		// leaves referencing transactions in place with a dangling id, and
		// resolution of such an id returns null instead of failing.
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			owner_id UUID REFERENCES users(id) ON DELETE CASCADE,
			date TIMESTAMPTZ NOT NULL,
			description TEXT DEFAULT '',
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			category_id UUID NOT NULL,
			account_id UUID NOT NULL,
			status_id UUID NOT NULL,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_owner_id ON transactions(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_owner_date ON transactions(owner_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_transaction_categories_owner_id ON transaction_categories(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transaction_accounts_owner_id ON transaction_accounts(owner_id)`,

		`INSERT INTO transaction_statuses (name) VALUES ('Completed'), ('Pending'), ('Cancelled')
			ON CONFLICT (name) DO NOTHING`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
