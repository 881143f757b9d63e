package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the repository.
// Safe to call multiple times.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Author columns are not foreign keys so that externally authenticated
// users can vote without a local users row.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		username VARCHAR(150) NOT NULL,
		email VARCHAR(254) NOT NULL DEFAULT '',
		password_hash VARBINARY(72) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		author_id VARCHAR(255) NOT NULL,
		created DATE NOT NULL,
		KEY questions_author_id (author_id)
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		question_id BIGINT NOT NULL,
		author_id VARCHAR(255) NOT NULL,
		value TINYINT UNSIGNED NOT NULL DEFAULT 0,
		comment TEXT NOT NULL,
		UNIQUE KEY answers_question_author (question_id, author_id),
		CONSTRAINT answers_question_fk FOREIGN KEY (question_id) REFERENCES questions (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS question_feedback (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		question_id BIGINT NOT NULL,
		author_id VARCHAR(255) NOT NULL,
		value VARCHAR(16) NOT NULL DEFAULT '',
		UNIQUE KEY question_feedback_question_author (question_id, author_id),
		CONSTRAINT question_feedback_question_fk FOREIGN KEY (question_id) REFERENCES questions (id) ON DELETE CASCADE
	)`,
}
