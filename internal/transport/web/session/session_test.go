package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func withCookies(r *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestStore_LoginThenUserID(t *testing.T) {
	store := NewStore([]byte(testSecret), true)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Login(rec, httptest.NewRequest(http.MethodPost, "/accounts/login/", nil), "user-1"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	r := withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	userID, err := store.UserID(r)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestStore_UserID_NoCookie(t *testing.T) {
	store := NewStore([]byte(testSecret), false)

	_, err := store.UserID(httptest.NewRequest(http.MethodGet, "/", nil))
	require.ErrorIs(t, err, ErrNoUser)
}

func TestStore_UserID_ForeignSecret(t *testing.T) {
	other := NewStore([]byte("another-secret-key-32-bytes-long"), false)
	rec := httptest.NewRecorder()
	require.NoError(t, other.Login(rec, httptest.NewRequest(http.MethodPost, "/", nil), "user-1"))

	store := NewStore([]byte(testSecret), false)
	_, err := store.UserID(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoUser)
}

func TestStore_Logout(t *testing.T) {
	store := NewStore([]byte(testSecret), false)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Logout(rec, httptest.NewRequest(http.MethodPost, "/accounts/logout/", nil)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
