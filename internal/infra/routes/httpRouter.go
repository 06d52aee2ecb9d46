package routes

import (
	"encoding/json"
	"net/http"

	"kivo-assistant/internal/infra/handlers"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux          *mux.Router
	ChatHandlers *handlers.ChatHandlers
	KivoHandlers *handlers.KivoHandlers
}

func NewRoutes(mux *mux.Router, chatHandlers *handlers.ChatHandlers, kivoHandlers *handlers.KivoHandlers) *Routes {
	return &Routes{mux, chatHandlers, kivoHandlers}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/api/chat", r.ChatHandlers.Chat).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/kivo", r.KivoHandlers.Evaluate).Methods(http.MethodPost)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
