package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

// SubmitVoteRequest is the request for the SubmitAnswer and SubmitFeedback commands.
// QuestionPK and Value are the raw submitted form values. Comment is optional
// and only kept for answers.
type SubmitVoteRequest struct {
	UserID     string
	QuestionPK string
	Value      string
	Comment    string
}

// SubmitVoteResponse describes a stored vote.
type SubmitVoteResponse struct {
	QuestionID int64
	// Created is false when an existing vote by the same user was overwritten.
	Created bool
}

// fetchVoteTarget resolves the submitted question key. A key that cannot name
// a question is reported the same way as a missing question.
func fetchVoteTarget(
	ctx context.Context, fetcher datasources.QuestionFetcher, questionPK string,
) (domain.Question, error) {
	id, err := strconv.ParseInt(questionPK, 10, 64)
	if err != nil {
		return domain.Question{}, domain.ErrQuestionNotFound(questionPK)
	}

	q, err := fetcher.FetchQuestion(ctx, id)
	if errors.Is(err, datasources.ErrNotFound) {
		return domain.Question{}, domain.ErrQuestionNotFound(questionPK)
	}
	if err != nil {
		return domain.Question{}, fmt.Errorf("fetching question: %w", err)
	}

	return q, nil
}
