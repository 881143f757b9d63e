package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/datasources/mocks"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockQuestionEditor struct {
	*mocks.MockQuestionFetcher
	*mocks.MockQuestionUpdater
}

func TestQuestionEdit_ServeHTTP(t *testing.T) {
	created := time.Date(2024, 4, 27, 0, 0, 0, 0, time.UTC)
	owned := domain.Question{ID: 3, Title: "Old", Description: "Desc", AuthorID: "owner", AuthorName: "olga", Created: created}

	cases := []struct {
		name         string
		method       string
		pk           string
		userID       string
		form         url.Values
		fetch        bool
		fetchErr     error
		update       bool
		updateErr    error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:       "get_current_fields",
			method:     http.MethodGet,
			pk:         "3",
			userID:     "owner",
			fetch:      true,
			wantStatus: http.StatusOK,
			wantBody:   `{"pk":3,"title":"Old","description":"Desc","author":"olga","created":"2024-04-27T00:00:00Z"}`,
		},
		{
			name:         "updates",
			method:       http.MethodPost,
			pk:           "3",
			userID:       "owner",
			form:         url.Values{"title": {"New"}, "description": {"Better"}},
			fetch:        true,
			update:       true,
			wantStatus:   http.StatusFound,
			wantLocation: "/question/edit-list/",
		},
		{
			name:       "other_user_gets_not_found",
			method:     http.MethodPost,
			pk:         "3",
			userID:     "intruder",
			form:       url.Values{"title": {"New"}, "description": {"Better"}},
			fetch:      true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown_question",
			method:     http.MethodGet,
			pk:         "3",
			userID:     "owner",
			fetch:      true,
			fetchErr:   datasources.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non_numeric_pk",
			method:     http.MethodGet,
			pk:         "abc",
			userID:     "owner",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			method:     http.MethodGet,
			pk:         "3",
			userID:     "owner",
			fetch:      true,
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid_form",
			method:     http.MethodPost,
			pk:         "3",
			userID:     "owner",
			form:       url.Values{"title": {""}, "description": {"Better"}},
			fetch:      true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"ok":false,"error":"Datos incompletos"}`,
		},
		{
			name:       "deleted_concurrently",
			method:     http.MethodPost,
			pk:         "3",
			userID:     "owner",
			form:       url.Values{"title": {"New"}, "description": {"Better"}},
			fetch:      true,
			update:     true,
			updateErr:  datasources.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions := mockQuestionEditor{
				MockQuestionFetcher: mocks.NewMockQuestionFetcher(t),
				MockQuestionUpdater: mocks.NewMockQuestionUpdater(t),
			}

			if tc.fetch {
				questions.MockQuestionFetcher.EXPECT().
					FetchQuestion(mock.Anything, int64(3)).
					Return(owned, tc.fetchErr)
			}
			if tc.update {
				questions.MockQuestionUpdater.EXPECT().
					UpdateQuestion(mock.Anything, int64(3), tc.userID, tc.form.Get("title"), tc.form.Get("description")).
					Return(tc.updateErr)
			}

			controller := QuestionEdit{Questions: questions}

			req := formRequest(tc.method, "/question/edit/"+tc.pk, tc.form)
			req = mux.SetURLVars(req, map[string]string{"pk": tc.pk})
			req = testContextWithUserID(tc.userID)(req)

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantLocation, rec.Header().Get("Location"))
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
