package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/metrics"
)

type VoteResponse struct {
	OK        bool                `json:"ok"`
	Questions []QuestionListEntry `json:"questions"`
}

type voteSubmitter = command.Command[command.SubmitVoteRequest, command.SubmitVoteResponse]

func handleVote(
	w http.ResponseWriter,
	r *http.Request,
	submit voteSubmitter,
	listing QuestionListing,
	voteMetrics *metrics.VoteMetrics,
	kind string,
) {
	userID := domain.UserIDFromContext(r.Context())
	req := command.SubmitVoteRequest{
		UserID:     userID,
		QuestionPK: r.PostFormValue("question_pk"),
		Value:      r.PostFormValue("value"),
		Comment:    r.PostFormValue("comment"),
	}

	logger := domain.LoggerFromContext(r.Context()).With("vote_kind", kind, "question_pk", req.QuestionPK)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	res, err := submit.Execute(ctx, req)

	var voteErr *domain.VoteError
	switch {
	case errors.As(err, &voteErr):
		voteMetrics.Record(kind, metrics.VoteResultRejected)
		logger.InfoContext(ctx, "vote rejected", "reason", voteErr.Message)
		writeError(ctx, w, http.StatusOK, voteErr.Message)
		return
	case errors.Is(err, command.ErrUnauthenticated):
		w.WriteHeader(http.StatusUnauthorized)
		return
	case err != nil:
		voteMetrics.Record(kind, metrics.VoteResultError)
		logger.ErrorContext(ctx, "unable to store vote", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if res.Created {
		voteMetrics.Record(kind, metrics.VoteResultCreated)
	} else {
		voteMetrics.Record(kind, metrics.VoteResultUpdated)
	}

	// The vote is committed at this point, so a listing failure still reports success.
	questions, err := listing.List(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list questions after vote",
			"question_id", res.QuestionID, "error", err)
		questions = []QuestionListEntry{}
	}

	writeJSON(ctx, w, http.StatusOK, VoteResponse{OK: true, Questions: questions})
}

type QuestionAnswer struct {
	SubmitCmd command.Command[command.SubmitVoteRequest, command.SubmitVoteResponse]
	Listing   QuestionListing
	Metrics   *metrics.VoteMetrics
}

func (c QuestionAnswer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleVote(w, r, c.SubmitCmd, c.Listing, c.Metrics, metrics.VoteKindAnswer)
}

type QuestionFeedback struct {
	SubmitCmd command.Command[command.SubmitVoteRequest, command.SubmitVoteResponse]
	Listing   QuestionListing
	Metrics   *metrics.VoteMetrics
}

func (c QuestionFeedback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handleVote(w, r, c.SubmitCmd, c.Listing, c.Metrics, metrics.VoteKindFeedback)
}
