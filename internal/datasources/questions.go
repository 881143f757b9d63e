package datasources

import (
	"context"

	"github.com/jbeshir/question-survey/internal/domain"
)

// QuestionFetcher fetches a single question. Returns ErrNotFound if it does not exist.
type QuestionFetcher interface {
	FetchQuestion(ctx context.Context, id int64) (domain.Question, error)
}

// QuestionLister lists every question.
type QuestionLister interface {
	ListQuestions(ctx context.Context) ([]domain.Question, error)
}

// UserQuestionLister lists the questions written by a user, newest first.
type UserQuestionLister interface {
	ListUserQuestions(ctx context.Context, userID string) ([]domain.Question, error)
}

// QuestionCreator stores a new question and returns its ID.
type QuestionCreator interface {
	CreateQuestion(ctx context.Context, q domain.Question) (int64, error)
}

// QuestionUpdater updates the text of a question owned by authorID.
// Returns ErrNotFound if no such question is owned by authorID.
type QuestionUpdater interface {
	UpdateQuestion(ctx context.Context, id int64, authorID, title, description string) error
}

// QuestionDeleter deletes a question owned by authorID, along with its votes.
// Returns ErrNotFound if no such question is owned by authorID.
type QuestionDeleter interface {
	DeleteQuestion(ctx context.Context, id int64, authorID string) error
}

type QuestionRepository interface {
	QuestionFetcher
	QuestionLister
	UserQuestionLister
	QuestionCreator
	QuestionUpdater
	QuestionDeleter
}
