package controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

// QuestionListEntry is a ranked question, annotated with the current user's
// votes when the request is authenticated.
type QuestionListEntry struct {
	domain.RankedQuestion
	Answer  *int  `json:"answer,omitempty"`
	Like    *bool `json:"like,omitempty"`
	Dislike *bool `json:"dislike,omitempty"`
}

type QuestionsListResponse struct {
	Questions []QuestionListEntry `json:"questions"`
}

// QuestionListing builds the ranked question list shown on the index page and
// returned after a vote.
type QuestionListing struct {
	RankCmd      command.Command[command.RankQuestionsRequest, []domain.RankedQuestion]
	VotesFetcher datasources.UserVotesFetcher
	Limit        int
}

func (l QuestionListing) List(ctx context.Context, userID string) ([]QuestionListEntry, error) {
	ranked, err := l.RankCmd.Execute(ctx, command.RankQuestionsRequest{Limit: l.Limit})
	if err != nil {
		return nil, fmt.Errorf("ranking questions: %w", err)
	}

	entries := make([]QuestionListEntry, 0, len(ranked))
	if userID == "" || len(ranked) == 0 {
		for _, q := range ranked {
			entries = append(entries, QuestionListEntry{RankedQuestion: q})
		}
		return entries, nil
	}

	ids := make([]int64, 0, len(ranked))
	for _, q := range ranked {
		ids = append(ids, q.ID)
	}

	votes, err := l.VotesFetcher.FetchUserVotes(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching user votes: %w", err)
	}

	for _, q := range ranked {
		answer := votes.Answers[q.ID]
		like := votes.Feedback[q.ID] == domain.FeedbackLike
		dislike := votes.Feedback[q.ID] == domain.FeedbackDislike

		entries = append(entries, QuestionListEntry{
			RankedQuestion: q,
			Answer:         &answer,
			Like:           &like,
			Dislike:        &dislike,
		})
	}

	return entries, nil
}

type QuestionsList struct {
	Listing     QuestionListing
	CacheMaxAge time.Duration
}

func (c QuestionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)

	questions, err := c.Listing.List(ctx, userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list questions", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Annotated lists are per-user and must not be cached by shared caches.
	if userID != "" {
		w.Header().Set("Cache-Control", "private, no-store")
	} else {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	writeJSON(ctx, w, http.StatusOK, QuestionsListResponse{Questions: questions})
}
