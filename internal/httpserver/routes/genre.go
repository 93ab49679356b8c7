package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/deps"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/mw"
)

func init() { Register(registerGenres) }

func registerGenres(r chi.Router, d deps.Deps) {
	g := d.Genres
	submit := r.With(mw.RateLimit(d.RateLimit))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, domain.GenreListPath, http.StatusFound)
	})
	r.Get(domain.GenreListPath, handlers.Read(d, g.List))

	r.Get(domain.GenrePath+"/create", handlers.Read(d, g.CreateForm))
	submit.Post(domain.GenrePath+"/create", handlers.Submit(d, g.Create))

	r.Get(domain.GenrePath+"/{id}", handlers.ByID(d, g.Detail))

	r.Get(domain.GenrePath+"/{id}/update", handlers.ByID(d, g.UpdateForm))
	submit.Post(domain.GenrePath+"/{id}/update", handlers.SubmitByID(d, g.Update))

	r.Get(domain.GenrePath+"/{id}/delete", handlers.ByID(d, g.DeleteForm))
	submit.Post(domain.GenrePath+"/{id}/delete", handlers.SubmitByID(d, g.Delete))
}
