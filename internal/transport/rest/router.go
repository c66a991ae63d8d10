package rest

import "net/http"

// NewRouter wires the REST handlers onto a ServeMux. Method-qualified
// patterns make the mux answer 405 for wrong verbs on known paths.
func NewRouter(health *HealthHandler, imports *ImportHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /import", imports.Import)

	return mux
}
