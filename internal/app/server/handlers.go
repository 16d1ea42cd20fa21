package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "materi/internal/app/errors"
	"materi/internal/app/render"
	"materi/internal/app/view"
	"materi/internal/config"
)

// index serves the materials page, opening a session on first visit
func (s *server) index(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(r)
	if ok {
		if err := c.Render(r.Context()); err != nil {
			s.fail(w, err)
			return
		}

		s.write(w, c)

		return
	}

	id, c, err := s.registry.Open(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.write(w, c)
}

// action dispatches a control activation, a page scoped action returns the whole document
// and every other action returns only the pane fragments
func (s *server) action(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(r)
	if !ok {
		http.Error(w, "session expired", http.StatusConflict)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := view.Action(r.PostForm.Get("action"))
	err := c.Dispatch(r.Context(), action, r.PostForm.Get("arg"))

	switch {
	case err == nil:
		w.Header().Set(render.ScopeHeader, action.Scope().String())
		w.Header().Set(render.TimeHeader, strconv.FormatInt(time.Now().UnixMilli(), 10))

		if action.Scope() == view.ScopePage {
			s.write(w, c)
			return
		}

		s.writeHTML(w, c.PaneHTML())
	case errors.Is(err, apperrors.ErrUnknownAction), errors.Is(err, apperrors.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotMounted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.fail(w, err)
	}
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) session(r *http.Request) (*view.Controller, bool) {
	cookie, err := r.Cookie(config.SessionCookie)
	if err != nil {
		return nil, false
	}

	return s.registry.Get(cookie.Value)
}

func (s *server) write(w http.ResponseWriter, c *view.Controller) {
	s.writeHTML(w, c.Document().HTML())
}

func (s *server) writeHTML(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(markup))
}

func (s *server) fail(w http.ResponseWriter, err error) {
	s.log.Error().Err(err).Msg("Request failed")
	s.reporter.Capture(err, map[string]string{"component": "server"})
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
