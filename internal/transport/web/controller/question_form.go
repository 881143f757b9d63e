package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
)

// QuestionForm carries the editable fields of a question.
type QuestionForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// validationError is a form rejection whose text is shown to the user as-is.
type validationError string

func (e validationError) Error() string {
	return string(e)
}

func parseQuestionForm(r *http.Request) (QuestionForm, error) {
	form := QuestionForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	if form.Title == "" || form.Description == "" {
		return QuestionForm{}, validationError("Datos incompletos")
	}
	if utf8.RuneCountInString(form.Title) > domain.MaxQuestionTitleLength {
		return QuestionForm{}, validationError(fmt.Sprintf("El titulo no puede superar %d caracteres", domain.MaxQuestionTitleLength))
	}

	return form, nil
}

// fetchOwnedQuestion loads the question named by the pk route variable. It
// writes a 404 and returns false unless the current user wrote the question.
func fetchOwnedQuestion(
	w http.ResponseWriter, r *http.Request, fetcher datasources.QuestionFetcher,
) (domain.Question, bool) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	id, err := strconv.ParseInt(mux.Vars(r)["pk"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return domain.Question{}, false
	}

	q, err := fetcher.FetchQuestion(ctx, id)
	if errors.Is(err, datasources.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return domain.Question{}, false
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch question", "question_id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return domain.Question{}, false
	}

	if !q.IsAuthoredBy(domain.UserIDFromContext(ctx)) {
		logger.WarnContext(ctx, "attempt to modify another user's question", "question_id", id)
		w.WriteHeader(http.StatusNotFound)
		return domain.Question{}, false
	}

	return q, true
}
