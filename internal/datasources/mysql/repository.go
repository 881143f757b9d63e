package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

const createdDateLayout = "2006-01-02"

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func selectQuestions() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		"q.id",
		"q.title",
		"q.description",
		"q.author_id",
		"COALESCE(u.username, q.author_id)",
		"q.created",
	)
	sb.From("questions q")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = q.author_id")
	return sb
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (domain.Question, error) {
	var q domain.Question
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.AuthorID, &q.AuthorName, &q.Created)
	return q, err
}

func (r *Repository) FetchQuestion(ctx context.Context, id int64) (domain.Question, error) {
	sb := selectQuestions()
	sb.Where(sb.Equal("q.id", id))

	query, args := sb.Build()
	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Question{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.Question{}, fmt.Errorf("fetching question: %w", err)
	}
	return q, nil
}

func (r *Repository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	sb := selectQuestions()
	sb.OrderBy("q.id")

	return r.queryQuestions(ctx, sb)
}

func (r *Repository) ListUserQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	sb := selectQuestions()
	sb.Where(sb.Equal("q.author_id", userID))
	sb.OrderBy("q.created DESC", "q.id DESC")

	return r.queryQuestions(ctx, sb)
}

func (r *Repository) queryQuestions(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Question, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running questions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	questions := []domain.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning questions: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return questions, nil
}

// CreateQuestion stores q; its ID is ignored and the assigned ID returned.
// The creation date is stored as the calendar date of q.Created in its own location.
func (r *Repository) CreateQuestion(ctx context.Context, q domain.Question) (int64, error) {
	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto("questions")
	ib.Cols("title", "description", "author_id", "created")
	ib.Values(q.Title, q.Description, q.AuthorID, q.Created.Format(createdDateLayout))

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting question: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted question ID: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateQuestion(
	ctx context.Context, id int64, authorID, title, description string,
) error {
	if err := r.checkQuestionOwner(ctx, id, authorID); err != nil {
		return err
	}

	ub := sqlbuilder.MySQL.NewUpdateBuilder()
	ub.Update("questions")
	ub.Set(ub.Assign("title", title), ub.Assign("description", description))
	ub.Where(ub.Equal("id", id), ub.Equal("author_id", authorID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating question: %w", err)
	}
	return nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, id int64, authorID string) error {
	dlb := sqlbuilder.MySQL.NewDeleteBuilder()
	dlb.DeleteFrom("questions")
	dlb.Where(dlb.Equal("id", id), dlb.Equal("author_id", authorID))

	query, args := dlb.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading deleted row count: %w", err)
	}
	if affected == 0 {
		return datasources.ErrNotFound
	}
	return nil
}

// checkQuestionOwner checks existence separately from the update itself,
// as MySQL reports zero affected rows for an update that changes nothing.
func (r *Repository) checkQuestionOwner(ctx context.Context, id int64, authorID string) error {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("id").From("questions")
	sb.Where(sb.Equal("id", id), sb.Equal("author_id", authorID))

	query, args := sb.Build()
	var found int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return datasources.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching question owner: %w", err)
	}
	return nil
}
