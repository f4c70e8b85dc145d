package router

import (
	"net/http"

	"github.com/andrewpaige1/revision-api/handlers"
	"github.com/andrewpaige1/revision-api/logger"
	"github.com/andrewpaige1/revision-api/middleware"
)

// NewRouter registers every route. Protected routes are chained as
// authenticate, authorize, handle.
func NewRouter(h *handlers.DBHandler, authn func(http.Handler) http.Handler, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	admin := func(next http.HandlerFunc) http.Handler {
		return authn(middleware.RequireAdmin(next))
	}
	member := func(next http.HandlerFunc) http.Handler {
		return authn(middleware.RequireClientOrAdmin(next))
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("revision-api v1"))
	})

	// Client
	mux.HandleFunc("POST /v1/client/login", h.Login)
	mux.HandleFunc("POST /v1/client/admin", h.AdminLogin)
	mux.HandleFunc("POST /v1/client", h.RegisterClient)
	mux.Handle("GET /v1/client/all", admin(h.GetClients))
	mux.Handle("GET /v1/client/{pseudo}", authn(middleware.RequireMyAccountOrAdmin(h.GetClient)))
	mux.Handle("PATCH /v1/client", admin(h.UpdateClient))
	mux.Handle("DELETE /v1/client", admin(h.DeleteClient))

	// Deck
	mux.Handle("GET /v1/deck/all/{pseudo}", member(h.GetDecksOfClient))
	mux.Handle("GET /v1/deck/{id}", member(h.GetDeck))
	mux.Handle("POST /v1/deck", admin(h.CreateDeck))
	mux.Handle("PATCH /v1/deck", admin(h.UpdateDeck))
	mux.Handle("DELETE /v1/deck", admin(h.DeleteDeck))

	// Card
	mux.Handle("GET /v1/card/all/{deck_id}", member(h.GetCardsOfDeck))
	mux.Handle("GET /v1/card/{id}", member(h.GetCard))
	mux.Handle("POST /v1/card", admin(h.CreateCard))
	mux.Handle("PATCH /v1/card", admin(h.UpdateCard))
	mux.Handle("DELETE /v1/card", admin(h.DeleteCard))

	// Revision category
	mux.HandleFunc("GET /v1/category/all", h.GetCategories)
	mux.HandleFunc("GET /v1/category/{id}", h.GetCategory)
	mux.Handle("POST /v1/category", admin(h.CreateCategory))
	mux.Handle("PATCH /v1/category", admin(h.UpdateCategory))
	mux.Handle("DELETE /v1/category", admin(h.DeleteCategory))

	// Session
	mux.Handle("GET /v1/session/{id}", member(h.GetSession))
	mux.Handle("POST /v1/session", member(h.CreateSession))
	mux.Handle("PATCH /v1/session", member(h.UpdateSession))
	mux.Handle("DELETE /v1/session", admin(h.DeleteSession))

	var handler http.Handler = mux
	handler = middleware.Recover(log)(handler)
	handler = middleware.WithLogging(log)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
