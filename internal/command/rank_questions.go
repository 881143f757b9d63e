package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jonboulle/clockwork"
)

// RankQuestionsRequest is the request for the RankQuestions command.
type RankQuestionsRequest struct {
	// Limit caps the number of questions returned; zero or less returns all.
	Limit int
}

// RankQuestions scores every question from its current votes and returns the best first.
// Scores are derived on each call and never stored.
type RankQuestions struct {
	Lister   datasources.QuestionLister
	Counter  datasources.VoteCounter
	Clock    clockwork.Clock
	Location *time.Location
	Config   domain.RankingConfig
}

// NewRankQuestions creates a properly initialized RankQuestions command.
func NewRankQuestions(
	lister datasources.QuestionLister,
	counter datasources.VoteCounter,
	clock clockwork.Clock,
	location *time.Location,
	config domain.RankingConfig,
) *RankQuestions {
	return &RankQuestions{
		Lister:   lister,
		Counter:  counter,
		Clock:    clock,
		Location: location,
		Config:   config,
	}
}

func (c *RankQuestions) Execute(ctx context.Context, req RankQuestionsRequest) ([]domain.RankedQuestion, error) {
	questions, err := c.Lister.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	answerCounts, err := c.Counter.CountAnswersByValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting answers: %w", err)
	}

	feedbackCounts, err := c.Counter.CountFeedbackByValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting feedback: %w", err)
	}

	tallies := domain.TallyVotes(answerCounts, feedbackCounts, c.Config)
	today := c.Clock.Now().In(c.Location)

	ranked := domain.RankQuestions(questions, tallies, today, c.Config, req.Limit)

	domain.LoggerFromContext(ctx).DebugContext(ctx, "ranked questions",
		"questions", len(questions), "returned", len(ranked))

	return ranked, nil
}
