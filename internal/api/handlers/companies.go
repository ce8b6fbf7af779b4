package handlers

import (
	"log"
	"net/http"
	"shipping-quote-service/internal/api/dto"
	"shipping-quote-service/internal/ports"
)

// CompanyHandler exposes read-only company retrieval endpoints.
type CompanyHandler struct {
	Repo ports.CompanyRepository
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	companies, err := h.Repo.ListCompanies(r.Context())
	if err != nil {
		log.Printf("list companies failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCompaniesResponse{
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
	}
	for _, c := range companies {
		res.Companies = append(res.Companies, dto.CompanyResponse{
			CompanyID: c.CompanyID,
			Name:      c.Name,
			Mode:      string(c.Mode),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
