package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jonboulle/clockwork"
)

// QuestionCreate serves the add form and creates questions dated today in Location.
type QuestionCreate struct {
	Creator  datasources.QuestionCreator
	Clock    clockwork.Clock
	Location *time.Location
}

func (c QuestionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeJSON(ctx, w, http.StatusOK, QuestionForm{})
		return
	}

	form, err := parseQuestionForm(r)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	now := c.Clock.Now().In(c.Location)
	id, err := c.Creator.CreateQuestion(ctx, domain.Question{
		Title:       form.Title,
		Description: form.Description,
		AuthorID:    domain.UserIDFromContext(ctx),
		Created:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location),
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to create question", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "created question", "question_id", id)

	http.Redirect(w, r, editListPath, http.StatusFound)
}
