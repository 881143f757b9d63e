package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

const mysqlErrDuplicateEntry = 1062

func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto("users")
	ib.Cols("id", "username", "email", "password_hash", "created_at")
	ib.Values(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return datasources.ErrUsernameTaken
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("id", "username", "email", "password_hash", "created_at").From("users")
	sb.Where(sb.Equal("username", username))

	query, args := sb.Build()
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by username: %w", err)
	}
	return user, nil
}
