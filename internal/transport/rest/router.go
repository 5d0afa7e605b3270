package rest

import "net/http"

// NewRouter wires every endpoint onto a ServeMux.
func NewRouter(
	health *HealthHandler,
	entries *EntryHandler,
	contents *ContentHandler,
	upload *UploadHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /api/entries", entries.Create)
	mux.HandleFunc("GET /api/entries", entries.List)
	mux.HandleFunc("GET /api/entries/{id}", entries.Get)
	mux.HandleFunc("PUT /api/entries/{id}", entries.Update)
	mux.HandleFunc("DELETE /api/entries/{id}", entries.Delete)
	mux.HandleFunc("POST /api/entries/{id}/publish", entries.Publish)
	mux.HandleFunc("POST /api/entries/{id}/broadcast", entries.Broadcast)

	mux.HandleFunc("POST /api/contents", contents.Create)
	mux.HandleFunc("GET /api/contents", contents.List)
	mux.HandleFunc("GET /api/contents/{id}", contents.Get)
	mux.HandleFunc("PUT /api/contents/{id}", contents.Update)
	mux.HandleFunc("DELETE /api/contents/{id}", contents.Delete)

	mux.HandleFunc("POST /api/upload", upload.Upload)

	return mux
}
