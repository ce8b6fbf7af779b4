package api

import (
	"net/http"
	"shipping-quote-service/internal/api/handlers"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.CompanyRepository, orchestrator *services.QuoteOrchestrator) http.Handler {
	mux := http.NewServeMux()

	companyHandler := &handlers.CompanyHandler{Repo: repo}
	quoteHandler := &handlers.QuoteHandler{
		Repo:         repo,
		Orchestrator: orchestrator,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/companies", companyHandler.List)
	mux.HandleFunc("/quotes", quoteHandler.Quotes)

	return loggingMiddleware(mux)
}
