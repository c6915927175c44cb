package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFormRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/save-form", handler.SaveForm)
	mux.HandleFunc("POST /api/load-form", handler.LoadForm)
}
