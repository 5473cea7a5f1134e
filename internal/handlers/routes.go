package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	analyze := AnalyzeHandler{Analyzer: deps.Analyzer}

	mux.HandleFunc("/api/health", health.Handle)
	mux.HandleFunc("/api/analyze", analyze.Analyze)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Analyzer VideoAnalyzer
}
