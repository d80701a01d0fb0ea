package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousRedirectedToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/", "/koles", "/admin", "/logs", "/scan/booth-1"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, "path %s", path)
		assert.Equal(t, "/login", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestLoginRegistersNewAccount(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.login("alice", "secret", "1")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "alice")
	assertContainsText(t, doc, "h1", "alice")
	// All three default teams are listed even with no points yet
	assertContainsElement(t, doc, "#standings tr[data-team='1']")
	assertContainsElement(t, doc, "#standings tr[data-team='2']")
	assertContainsElement(t, doc, "#standings tr[data-team='3']")
}

func TestLoginExistingAccountWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "1")
	ts.get("/logout")

	rr := ts.login("alice", "wrong", "1")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".danger", "Неверный пароль")
	assert.False(t, ts.cookies.hasSession())
}

func TestLoginEmptyFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/login", url.Values{"username": {"alice"}})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".danger", "Заполните все поля!")
}

func TestLoginFullTeam(t *testing.T) {
	ts := newWebTestServer(t)

	for i := 0; i < 35; i++ {
		_, err := ts.app.AuthService.LoginOrRegister(t.Context(), "user"+string(rune('a'+i%26))+string(rune('a'+i/26)), "pw", "1")
		require.NoError(t, err)
	}

	rr := ts.login("latecomer", "pw", "1")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".danger", "регистрация закрыта")
	assert.False(t, ts.cookies.hasSession())
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "1")

	rr := ts.get("/logout")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	rr = ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestLoginPageRedirectsWhenLoggedIn(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "1")

	rr := ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}
