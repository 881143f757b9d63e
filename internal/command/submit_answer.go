package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

// SubmitAnswer records a user's numeric answer to a question, replacing any
// answer they gave before. Rejections are returned as *domain.VoteError.
type SubmitAnswer struct {
	Fetcher       datasources.QuestionFetcher
	Upserter      datasources.AnswerUpserter
	AllowSelfVote bool
}

// NewSubmitAnswer creates a properly initialized SubmitAnswer command.
func NewSubmitAnswer(
	fetcher datasources.QuestionFetcher,
	upserter datasources.AnswerUpserter,
	allowSelfVote bool,
) *SubmitAnswer {
	return &SubmitAnswer{
		Fetcher:       fetcher,
		Upserter:      upserter,
		AllowSelfVote: allowSelfVote,
	}
}

func (c *SubmitAnswer) Execute(ctx context.Context, req SubmitVoteRequest) (SubmitVoteResponse, error) {
	if req.UserID == "" {
		return SubmitVoteResponse{}, ErrUnauthenticated
	}

	if req.QuestionPK == "" || req.Value == "" {
		return SubmitVoteResponse{}, domain.ErrIncompleteVote()
	}

	value, err := domain.ParseAnswerValue(req.Value)
	if err != nil {
		return SubmitVoteResponse{}, err
	}

	question, err := fetchVoteTarget(ctx, c.Fetcher, req.QuestionPK)
	if err != nil {
		return SubmitVoteResponse{}, err
	}

	if !c.AllowSelfVote && question.IsAuthoredBy(req.UserID) {
		return SubmitVoteResponse{}, domain.ErrSelfAnswer()
	}

	created, err := c.Upserter.UpsertAnswer(ctx, domain.Answer{
		QuestionID: question.ID,
		AuthorID:   req.UserID,
		Value:      value,
		Comment:    strings.TrimSpace(req.Comment),
	})
	if err != nil {
		return SubmitVoteResponse{}, fmt.Errorf("storing answer: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "stored answer",
		"question_id", question.ID, "value", value, "created", created)

	return SubmitVoteResponse{QuestionID: question.ID, Created: created}, nil
}
