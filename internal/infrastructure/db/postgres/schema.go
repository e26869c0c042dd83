package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaSQL creates the tables when they are missing. There are no migrations.
var schemaSQL = []string{
	`CREATE TABLE IF NOT EXISTS todos (
  id        BIGSERIAL PRIMARY KEY,
  title     TEXT NOT NULL,
  completed BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE INDEX IF NOT EXISTS ix_todos_title ON todos (title)`,
	`CREATE TABLE IF NOT EXISTS users (
  id        BIGSERIAL PRIMARY KEY,
  name      TEXT NOT NULL,
  email     TEXT NOT NULL,
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  role      TEXT NOT NULL DEFAULT 'user',
  CONSTRAINT users_email_key UNIQUE (email),
  CONSTRAINT users_role_check CHECK (role IN ('admin', 'user', 'guest'))
)`,
	`CREATE INDEX IF NOT EXISTS ix_users_name ON users (name)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaSQL {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
