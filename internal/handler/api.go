package handler

import (
	"encoding/json"
	"net/http"

	"faithmedia-api/internal/logger"
	"faithmedia-api/internal/service"

	"github.com/go-chi/chi/v5"
)

// API holds the dependencies of the HTTP handlers.
type API struct {
	svc *service.Service
	log logger.Logger
}

// NewAPI creates a new API handler set.
func NewAPI(svc *service.Service, log logger.Logger) *API {
	return &API{svc: svc, log: log}
}

// respond writes a handler result as the HTTP response. A 204 always has a
// null body; string data on an error status is wrapped as {"error": msg}.
func (a *API) respond(w http.ResponseWriter, result service.Result) {
	if result.Status == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body := result.Data
	if msg, ok := result.Data.(string); ok && result.Status >= http.StatusBadRequest {
		body = map[string]string{"error": msg}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(result.Status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Error(err, "failed to encode response body")
	}
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Health(r.Context()))
}

func (a *API) listReligions(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Religions(r.Context(), ""))
}

func (a *API) getReligion(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Religions(r.Context(), chi.URLParam(r, "religion")))
}

func (a *API) listPages(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.PagesByReligion(r.Context(), chi.URLParam(r, "religion"), "", r.URL.Query()))
}

func (a *API) getPage(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.PagesByReligion(r.Context(), chi.URLParam(r, "religion"), chi.URLParam(r, "page"), r.URL.Query()))
}

func (a *API) topicsByReligion(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.TopicsByReligion(r.Context(), chi.URLParam(r, "religion"), chi.URLParam(r, "type")))
}

func (a *API) listVideos(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.VideosByReligion(r.Context(), chi.URLParam(r, "religion"), r.URL.Query()))
}

func (a *API) getVideo(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.VideoBySlug(r.Context(), chi.URLParam(r, "video")))
}

func (a *API) listTopics(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Topics(r.Context()))
}

func (a *API) videosByTopic(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.VideosByTopic(r.Context(), chi.URLParam(r, "topicID")))
}

func (a *API) listAuthors(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Authors(r.Context()))
}

func (a *API) videosByAuthor(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.VideosByAuthor(r.Context(), chi.URLParam(r, "authorID")))
}

func (a *API) listComments(w http.ResponseWriter, r *http.Request) {
	a.respond(w, a.svc.Comments(r.Context(), chi.URLParam(r, "pageID")))
}

func (a *API) addComment(w http.ResponseWriter, r *http.Request) {
	body, ok := a.decodeSubmission(w, r)
	if !ok {
		return
	}
	a.respond(w, a.svc.AddComment(r.Context(), chi.URLParam(r, "pageID"), body))
}

// updatePage stages a content edit for a row of the pages table. The target
// is resolved first; a missing row is a 404 before any validation runs.
func (a *API) updatePage(w http.ResponseWriter, r *http.Request) {
	a.stageEdit(w, r, "pages", chi.URLParam(r, "pageID"))
}

// updateReligion stages a content edit for a row of the religions table.
func (a *API) updateReligion(w http.ResponseWriter, r *http.Request) {
	a.stageEdit(w, r, "religions", chi.URLParam(r, "religion"))
}

func (a *API) stageEdit(w http.ResponseWriter, r *http.Request, pageType, pageID string) {
	if resolved := a.svc.PageByID(r.Context(), pageType, pageID); resolved.Status != http.StatusOK {
		a.respond(w, resolved)
		return
	}
	body, ok := a.decodeSubmission(w, r)
	if !ok {
		return
	}
	a.respond(w, a.svc.StagePageEdit(r.Context(), pageType, pageID, body))
}

func (a *API) decodeSubmission(w http.ResponseWriter, r *http.Request) (service.Submission, bool) {
	var body service.Submission
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.respond(w, service.Result{Status: http.StatusBadRequest, Data: "Invalid request body."})
		return body, false
	}
	return body, true
}
