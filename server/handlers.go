package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vistaarbengaluru/vistaar/internal/contact"
	"github.com/vistaarbengaluru/vistaar/internal/models"
)

const (
	maxContactBody = 64 << 10

	// flashCookie carries the success notice across the post-submit redirect
	// and is cleared on the first page view that shows it.
	flashCookie = "contact_flash"
	flashSent   = "sent"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, draft models.Draft, notice *models.Notice) {
	data := models.IndexPageData{
		Site:   s.site,
		Draft:  draft,
		Notice: notice,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "index.html", data); err != nil {
		slog.Error("Failed to render index template", "error", err)
	}
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	var notice *models.Notice
	if c, err := r.Cookie(flashCookie); err == nil {
		if c.Value == flashSent {
			n := contact.SentNotice
			notice = &n
		}
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
	s.renderIndex(w, http.StatusOK, models.Draft{}, notice)
}

func contactStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, contact.ErrMissingFields):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// HandleContact serves the no-script form post. The draft is only dropped on
// success, through a redirect to a fresh page.
func (s *Server) HandleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest)
		return
	}

	draft := models.Draft{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	err := s.contact.Submit(r.Context(), draft)
	if err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    flashSent,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   60,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	notice := contact.NoticeFor(err)
	s.renderIndex(w, contactStatus(err), draft, &notice)
}

type contactResponse struct {
	Notice models.Notice `json:"notice"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) HandleContactAPI(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	dec := json.NewDecoder(io.LimitReader(r.Body, maxContactBody))
	if err := dec.Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	err := s.contact.Submit(r.Context(), draft)
	writeJSON(w, contactStatus(err), contactResponse{Notice: contact.NoticeFor(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (s *Server) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	if s.validateSession(token) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "login.html", nil); err != nil {
		slog.Error("Failed to render login template", "error", err)
	}
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	valid, err := s.db.VerifyPassword(r.Context(), password)
	if err != nil {
		slog.Error("Failed to verify password", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	if !valid {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmplFunc(w, "login.html", map[string]string{"Error": "Invalid password"}); err != nil {
			slog.Error("Failed to render login template", "error", err)
		}
		return
	}

	token := s.createSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL.Seconds()),
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	s.deleteSession(token)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleAdmin lists recent inquiries, including the ones the relay rejected,
// so nothing a visitor sent is lost.
func (s *Server) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	errorMsg := r.URL.Query().Get("error")

	inquiries, err := s.db.ListInquiries(r.Context())
	if err != nil {
		slog.Error("Failed to load inquiries", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}
	stats, err := s.db.InboxStats(r.Context())
	if err != nil {
		slog.Error("Failed to load inbox stats", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	data := models.AdminPageData{
		Inquiries: inquiries,
		Stats:     stats,
		Message:   message,
		Error:     errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "admin.html", data); err != nil {
		slog.Error("Failed to render admin template", "error", err)
	}
}

func (s *Server) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	newPassword := r.FormValue("new_password")

	if len(newPassword) < 8 {
		http.Redirect(w, r, "/admin?error=Password+must+be+at+least+8+characters", http.StatusSeeOther)
		return
	}

	if err := s.db.SetPassword(r.Context(), newPassword); err != nil {
		slog.Error("Failed to update password", "error", err)
		http.Redirect(w, r, "/admin?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?message=Password+updated", http.StatusSeeOther)
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		if strings.HasSuffix(path, ".svg") {
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
