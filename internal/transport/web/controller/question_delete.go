package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

type QuestionDeleteConfirmation struct {
	Question domain.Question `json:"question"`
}

// QuestionDelete shows a confirmation payload on GET and deletes on POST.
// A question's answers and feedback are deleted with it.
type QuestionDelete struct {
	Questions interface {
		datasources.QuestionFetcher
		datasources.QuestionDeleter
	}
}

func (c QuestionDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, ok := fetchOwnedQuestion(w, r, c.Questions)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(ctx, w, http.StatusOK, QuestionDeleteConfirmation{Question: q})
		return
	}

	err := c.Questions.DeleteQuestion(ctx, q.ID, domain.UserIDFromContext(ctx))
	if errors.Is(err, datasources.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to delete question", "question_id", q.ID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "deleted question", "question_id", q.ID)

	http.Redirect(w, r, editListPath, http.StatusFound)
}
