package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/question-survey/internal/datasources/mocks"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserQuestionsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		questions  []domain.Question
		listErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "own_questions",
			questions:  []domain.Question{{ID: 4, Title: "Mine", AuthorID: "user-1", AuthorName: "me"}},
			wantStatus: http.StatusOK,
			wantBody: `{"questions":[{"pk":4,"title":"Mine","description":"","author":"me",
				"created":"0001-01-01T00:00:00Z"}]}`,
		},
		{
			name:       "none",
			wantStatus: http.StatusOK,
			wantBody:   `{"questions":[]}`,
		},
		{
			name:       "list_error",
			listErr:    errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockUserQuestionLister(t)
			lister.EXPECT().ListUserQuestions(mock.Anything, "user-1").Return(tc.questions, tc.listErr)

			controller := UserQuestionsList{Lister: lister}

			req := testContextWithUserID("user-1")(httptest.NewRequest(http.MethodGet, "/question/edit-list/", nil))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
