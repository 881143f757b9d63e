package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

// SubmitFeedback records a user's like/dislike/other reaction to a question,
// replacing any reaction they gave before. Rejections are returned as *domain.VoteError.
type SubmitFeedback struct {
	Fetcher       datasources.QuestionFetcher
	Upserter      datasources.FeedbackUpserter
	AllowSelfVote bool
}

// NewSubmitFeedback creates a properly initialized SubmitFeedback command.
func NewSubmitFeedback(
	fetcher datasources.QuestionFetcher,
	upserter datasources.FeedbackUpserter,
	allowSelfVote bool,
) *SubmitFeedback {
	return &SubmitFeedback{
		Fetcher:       fetcher,
		Upserter:      upserter,
		AllowSelfVote: allowSelfVote,
	}
}

func (c *SubmitFeedback) Execute(ctx context.Context, req SubmitVoteRequest) (SubmitVoteResponse, error) {
	if req.UserID == "" {
		return SubmitVoteResponse{}, ErrUnauthenticated
	}

	if req.QuestionPK == "" || req.Value == "" {
		return SubmitVoteResponse{}, domain.ErrIncompleteVote()
	}

	value, err := domain.ParseFeedbackValue(req.Value)
	if err != nil {
		return SubmitVoteResponse{}, err
	}

	question, err := fetchVoteTarget(ctx, c.Fetcher, req.QuestionPK)
	if err != nil {
		return SubmitVoteResponse{}, err
	}

	if !c.AllowSelfVote && question.IsAuthoredBy(req.UserID) {
		return SubmitVoteResponse{}, domain.ErrSelfFeedback()
	}

	created, err := c.Upserter.UpsertFeedback(ctx, domain.Feedback{
		QuestionID: question.ID,
		AuthorID:   req.UserID,
		Value:      value,
	})
	if err != nil {
		return SubmitVoteResponse{}, fmt.Errorf("storing feedback: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "stored feedback",
		"question_id", question.ID, "value", value, "created", created)

	return SubmitVoteResponse{QuestionID: question.ID, Created: created}, nil
}
