package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/deps"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/mw"
)

func init() { Register(registerBookInstances) }

func registerBookInstances(r chi.Router, d deps.Deps) {
	bi := d.Instances
	submit := r.With(mw.RateLimit(d.RateLimit))

	r.Get(domain.BookInstanceListPath, handlers.Read(d, bi.List))

	r.Get(domain.BookInstancePath+"/create", handlers.Read(d, bi.CreateForm))
	submit.Post(domain.BookInstancePath+"/create", handlers.Submit(d, bi.Create))

	r.Get(domain.BookInstancePath+"/{id}", handlers.ByID(d, bi.Detail))

	r.Get(domain.BookInstancePath+"/{id}/update", handlers.ByID(d, bi.UpdateForm))
	submit.Post(domain.BookInstancePath+"/{id}/update", handlers.SubmitByID(d, bi.Update))

	r.Get(domain.BookInstancePath+"/{id}/delete", handlers.ByID(d, bi.DeleteForm))
	submit.Post(domain.BookInstancePath+"/{id}/delete", handlers.SubmitByID(d, bi.Delete))
}
