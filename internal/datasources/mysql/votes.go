package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/question-survey/internal/domain"
)

const (
	answersTable  = "answers"
	feedbackTable = "question_feedback"
)

// UpsertAnswer overwrites the value of the existing answer for (QuestionID, AuthorID)
// or creates one. The comment is only written on creation.
func (r *Repository) UpsertAnswer(ctx context.Context, answer domain.Answer) (bool, error) {
	created, err := r.upsertVote(ctx, answersTable, answer.QuestionID, answer.AuthorID, answer.Value,
		map[string]any{"comment": answer.Comment})
	if err != nil {
		return false, fmt.Errorf("upserting answer: %w", err)
	}
	return created, nil
}

// UpsertFeedback overwrites the existing feedback for (QuestionID, AuthorID) or creates one.
func (r *Repository) UpsertFeedback(ctx context.Context, feedback domain.Feedback) (bool, error) {
	created, err := r.upsertVote(ctx, feedbackTable, feedback.QuestionID, feedback.AuthorID,
		string(feedback.Value), nil)
	if err != nil {
		return false, fmt.Errorf("upserting feedback: %w", err)
	}
	return created, nil
}

// upsertVote reads the existing row under a lock and updates it in place, or inserts
// a new row with insertDefaults for columns other than the key and value.
func (r *Repository) upsertVote(
	ctx context.Context,
	table string,
	questionID int64,
	authorID string,
	value any,
	insertDefaults map[string]any,
) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existingID, err := currentVoteID(ctx, tx, table, questionID, authorID)
	if err != nil {
		return false, err
	}

	var query string
	var args []any
	if existingID != 0 {
		ub := sqlbuilder.MySQL.NewUpdateBuilder()
		ub.Update(table)
		ub.Set(ub.Assign("value", value))
		ub.Where(ub.Equal("id", existingID))
		query, args = ub.Build()
	} else {
		cols := []string{"question_id", "author_id", "value"}
		vals := []any{questionID, authorID, value}
		for col, v := range insertDefaults {
			cols = append(cols, col)
			vals = append(vals, v)
		}

		ib := sqlbuilder.MySQL.NewInsertBuilder()
		ib.InsertInto(table)
		ib.Cols(cols...)
		ib.Values(vals...)
		query, args = ib.Build()
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("writing vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}

	return existingID == 0, nil
}

// currentVoteID returns the ID of the existing vote row, or zero if there is none.
func currentVoteID(ctx context.Context, tx *sql.Tx, table string, questionID int64, authorID string) (int64, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("id").From(table)
	sb.Where(sb.Equal("question_id", questionID), sb.Equal("author_id", authorID))
	sb.ForUpdate()

	query, args := sb.Build()
	var id int64
	err := tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("getting current vote: %w", err)
	}
	return id, nil
}

func (r *Repository) CountAnswersByValue(ctx context.Context) ([]domain.AnswerCount, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("question_id", "value", "COUNT(*)").From(answersTable)
	sb.GroupBy("question_id", "value")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting answers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := []domain.AnswerCount{}
	for rows.Next() {
		var c domain.AnswerCount
		if err := rows.Scan(&c.QuestionID, &c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning answer counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}

func (r *Repository) CountFeedbackByValue(ctx context.Context) ([]domain.FeedbackCount, error) {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("question_id", "value", "COUNT(*)").From(feedbackTable)
	sb.GroupBy("question_id", "value")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := []domain.FeedbackCount{}
	for rows.Next() {
		var c domain.FeedbackCount
		var value string
		if err := rows.Scan(&c.QuestionID, &value, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning feedback counts: %w", err)
		}
		c.Value = domain.FeedbackValue(value)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}

func (r *Repository) FetchUserVotes(
	ctx context.Context, userID string, questionIDs []int64,
) (domain.UserVotes, error) {
	votes := domain.UserVotes{
		Answers:  map[int64]int{},
		Feedback: map[int64]domain.FeedbackValue{},
	}
	if userID == "" || len(questionIDs) == 0 {
		return votes, nil
	}

	ids := make([]any, 0, len(questionIDs))
	for _, id := range questionIDs {
		ids = append(ids, id)
	}

	err := r.scanUserVotes(ctx, answersTable, userID, ids, func(questionID int64, value string) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing answer value [%s]: %w", value, err)
		}
		votes.Answers[questionID] = v
		return nil
	})
	if err != nil {
		return domain.UserVotes{}, fmt.Errorf("fetching user answers: %w", err)
	}

	err = r.scanUserVotes(ctx, feedbackTable, userID, ids, func(questionID int64, value string) error {
		votes.Feedback[questionID] = domain.FeedbackValue(value)
		return nil
	})
	if err != nil {
		return domain.UserVotes{}, fmt.Errorf("fetching user feedback: %w", err)
	}

	return votes, nil
}

func (r *Repository) scanUserVotes(
	ctx context.Context,
	table, userID string,
	questionIDs []any,
	visit func(questionID int64, value string) error,
) error {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("question_id", "CAST(value AS CHAR)").From(table)
	sb.Where(sb.Equal("author_id", userID), sb.In("question_id", questionIDs...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running votes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var questionID int64
		var value string
		if err := rows.Scan(&questionID, &value); err != nil {
			return fmt.Errorf("scanning votes: %w", err)
		}
		if err := visit(questionID, value); err != nil {
			return err
		}
	}
	return rows.Err()
}
