package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

type QuestionEdit struct {
	Questions interface {
		datasources.QuestionFetcher
		datasources.QuestionUpdater
	}
}

func (c QuestionEdit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, ok := fetchOwnedQuestion(w, r, c.Questions)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(ctx, w, http.StatusOK, q)
		return
	}

	form, err := parseQuestionForm(r)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	err = c.Questions.UpdateQuestion(ctx, q.ID, domain.UserIDFromContext(ctx), form.Title, form.Description)
	if errors.Is(err, datasources.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to update question", "question_id", q.ID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, editListPath, http.StatusFound)
}
