package router

import (
	"net/http"
	"net/url"

	"github.com/jbeshir/question-survey/internal/domain"
)

const loginPath = "/accounts/login/"

// requireAuthMiddleware redirects requests without a user to the login page,
// passing the original location as next.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "redirecting unauthenticated request to login")
			http.Redirect(w, r, loginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
