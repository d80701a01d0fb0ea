package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ostapdev/teamwheel/internal/model"
	"github.com/ostapdev/teamwheel/internal/services/auth"
	"github.com/ostapdev/teamwheel/internal/session"
	"github.com/ostapdev/teamwheel/internal/web/middleware"
	"github.com/ostapdev/teamwheel/internal/web/templates"
)

// AuthHandler handles the combined login/registration page
type AuthHandler struct {
	authService *auth.Service
	teamCap     int
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, teamCap int, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		teamCap:     teamCap,
		sessionTTL:  sessionTTL,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAccount(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, "", "")
}

// Login handles the login/registration form submission. An unknown
// username with a free slot on the chosen team becomes a new account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "Заполните все поля!", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))
	team := model.TeamID(strings.TrimSpace(r.FormValue("role")))

	result, err := h.authService.LoginOrRegister(r.Context(), username, password, team)
	if err != nil {
		h.renderLogin(w, r, h.loginError(err, team), username)
		return
	}

	h.setSessionCookie(w, result.Cookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.authService.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) loginError(err error, team model.TeamID) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return "Заполните все поля!"
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Неверный пароль"
	case errors.Is(err, model.ErrTeamFull):
		return fmt.Sprintf("В команде %s уже %d участников, регистрация закрыта.", team, h.teamCap)
	default:
		return "Не удалось войти, попробуйте ещё раз"
	}
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	render(w, http.StatusOK, "login.html", templates.LoginData{
		PageData: pageData(r, "Вход"),
		Error:    errorMsg,
		Username: username,
		Teams:    model.DefaultTeamIDs,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
