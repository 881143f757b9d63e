package datasources

import (
	"context"

	"github.com/jbeshir/question-survey/internal/domain"
)

// AnswerUpserter overwrites the value of the answer its author gave to the question,
// creating the answer if none exists. Reports whether a new record was created.
type AnswerUpserter interface {
	UpsertAnswer(ctx context.Context, answer domain.Answer) (bool, error)
}

// FeedbackUpserter overwrites the feedback its author gave to the question,
// creating it if none exists. Reports whether a new record was created.
type FeedbackUpserter interface {
	UpsertFeedback(ctx context.Context, feedback domain.Feedback) (bool, error)
}

// VoteCounter returns vote counts grouped by question and value.
type VoteCounter interface {
	CountAnswersByValue(ctx context.Context) ([]domain.AnswerCount, error)
	CountFeedbackByValue(ctx context.Context) ([]domain.FeedbackCount, error)
}

// UserVotesFetcher fetches one user's votes on the given questions.
type UserVotesFetcher interface {
	FetchUserVotes(ctx context.Context, userID string, questionIDs []int64) (domain.UserVotes, error)
}

type VoteRepository interface {
	AnswerUpserter
	FeedbackUpserter
	VoteCounter
	UserVotesFetcher
}
