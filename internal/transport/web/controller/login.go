package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/domain"
)

const invalidCredentialsMessage = "Usuario o contraseña incorrectos"

// SessionWriter starts and ends logged-in sessions.
type SessionWriter interface {
	Login(w http.ResponseWriter, r *http.Request, userID string) error
	Logout(w http.ResponseWriter, r *http.Request) error
}

type LoginForm struct {
	Next string `json:"next"`
}

type Login struct {
	AuthCmd  command.Command[command.AuthenticateUserRequest, domain.User]
	Sessions SessionWriter
}

func (c Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		writeJSON(ctx, w, http.StatusOK, LoginForm{Next: localRedirectTarget(r.URL.Query().Get("next"))})
		return
	}

	user, err := c.AuthCmd.Execute(ctx, command.AuthenticateUserRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if errors.Is(err, command.ErrInvalidCredentials) {
		logger.InfoContext(ctx, "login rejected")
		writeError(ctx, w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to authenticate user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := c.Sessions.Login(w, r, user.ID); err != nil {
		logger.ErrorContext(ctx, "unable to start session", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	http.Redirect(w, r, localRedirectTarget(r.FormValue("next")), http.StatusFound)
}

type Logout struct {
	Sessions SessionWriter
}

func (c Logout) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := c.Sessions.Logout(w, r); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to end session", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// localRedirectTarget returns next if it is a path on this site, and "/" otherwise.
func localRedirectTarget(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return next
}
