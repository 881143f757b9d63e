package controller

import (
	"net/http"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

type UserQuestionsListResponse struct {
	Questions []domain.Question `json:"questions"`
}

// UserQuestionsList lists the questions written by the current user, newest first.
type UserQuestionsList struct {
	Lister datasources.UserQuestionLister
}

func (c UserQuestionsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := c.Lister.ListUserQuestions(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list user questions", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if questions == nil {
		questions = []domain.Question{}
	}

	w.Header().Set("Cache-Control", "private, no-store")
	writeJSON(ctx, w, http.StatusOK, UserQuestionsListResponse{Questions: questions})
}
