package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the chi router for the content API.
func NewRouter(api *API, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
		// Preflight falls through to shortCircuitOptions so it answers 204.
		OptionsPassthrough: true,
	}))
	r.Use(shortCircuitOptions)
	r.Use(BearerToken)

	r.Get("/healthz", api.health)

	r.Get("/religions", api.listReligions)
	r.Route("/religions/{religion}", func(r chi.Router) {
		r.Get("/", api.getReligion)
		r.Put("/", api.updateReligion)
		r.Get("/pages", api.listPages)
		r.Get("/pages/{page}", api.getPage)
		r.Get("/topics/{type}", api.topicsByReligion)
		r.Get("/videos", api.listVideos)
		r.Get("/videos/{video}", api.getVideo)
	})

	r.Get("/topics", api.listTopics)
	r.Get("/topics/{topicID}/videos", api.videosByTopic)

	r.Get("/authors", api.listAuthors)
	r.Get("/authors/{authorID}/videos", api.videosByAuthor)

	r.Route("/pages/{pageID}", func(r chi.Router) {
		r.Put("/", api.updatePage)
		r.Get("/comments", api.listComments)
		r.Post("/comments", api.addComment)
	})

	// A path outside the declared resource set is a bad route, not a
	// missing resource; 404 is reserved for identified resources that do
	// not exist.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusBadRequest, "Unknown resource.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	return r
}

// shortCircuitOptions answers every OPTIONS request with an empty 204 once
// the CORS middleware has attached its headers.
func shortCircuitOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
