package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/catalog/internal/catalog"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/deps"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/validation"
	"github.com/MrSnakeDoc/catalog/internal/view"
)

const maxFormBytes = 1 << 20

// Workflow step shapes, one per kind of route.
type (
	ReadFunc       func(ctx context.Context) (catalog.Outcome, error)
	ByIDFunc       func(ctx context.Context, id string) (catalog.Outcome, error)
	SubmitFunc     func(ctx context.Context, form validation.Form) (catalog.Outcome, error)
	SubmitByIDFunc func(ctx context.Context, id string, form validation.Form) (catalog.Outcome, error)
)

// Read serves a workflow step that needs neither a path id nor a form.
func Read(d deps.Deps, step ReadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := step(r.Context())
		respond(d, w, r, out, err)
	}
}

// ByID serves a workflow step keyed by the {id} path parameter.
func ByID(d deps.Deps, step ByIDFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := step(r.Context(), chi.URLParam(r, "id"))
		respond(d, w, r, out, err)
	}
}

// Submit serves a form POST.
func Submit(d deps.Deps, step SubmitFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := parseForm(d, w, r)
		if !ok {
			return
		}
		out, err := step(r.Context(), form)
		respond(d, w, r, out, err)
	}
}

// SubmitByID serves a form POST keyed by the {id} path parameter.
func SubmitByID(d deps.Deps, step SubmitByIDFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := parseForm(d, w, r)
		if !ok {
			return
		}
		out, err := step(r.Context(), chi.URLParam(r, "id"), form)
		respond(d, w, r, out, err)
	}
}

func parseForm(d deps.Deps, w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		d.Logger.Debug("invalid form body", logger.String("path", r.URL.Path), logger.Error(err))
		renderError(d, w, r, http.StatusBadRequest)
		return nil, false
	}
	return r.PostForm, true
}

func respond(d deps.Deps, w http.ResponseWriter, r *http.Request, out catalog.Outcome, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		d.Logger.Debug("not found", logger.String("path", r.URL.Path), logger.Error(err))
		renderError(d, w, r, http.StatusNotFound)
	case err != nil:
		d.Logger.Error("workflow failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.Error(err))
		renderError(d, w, r, http.StatusInternalServerError)
	case out.IsRedirect():
		http.Redirect(w, r, out.Redirect, http.StatusFound)
	default:
		renderView(d, w, r, http.StatusOK, out.View, out.Data)
	}
}

func renderError(d deps.Deps, w http.ResponseWriter, r *http.Request, status int) {
	renderView(d, w, r, status, view.ViewError, view.ErrorView{
		Title:   http.StatusText(status),
		Status:  status,
		Message: errorMessage(status),
	})
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The requested record does not exist."
	case http.StatusBadRequest:
		return "The submitted form could not be read."
	default:
		return "Something went wrong. Please try again later."
	}
}

// renderView buffers the page so a template failure still yields a clean 500.
func renderView(d deps.Deps, w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := d.Views.Render(&buf, name, data); err != nil {
		d.Logger.Error("render failed", logger.String("view", name), logger.String("path", r.URL.Path), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
