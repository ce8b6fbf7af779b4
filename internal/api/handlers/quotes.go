package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"shipping-quote-service/internal/api/dto"
	"shipping-quote-service/internal/domain"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"
)

type QuoteHandler struct {
	Repo         ports.CompanyRepository
	Orchestrator *services.QuoteOrchestrator
}

// Quotes computes a quote batch for a vehicle or a raw address across
// all companies on file.
func (h *QuoteHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	companies, err := h.Repo.ListCompanies(r.Context())
	if err != nil {
		log.Printf("list companies failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var batch *domain.QuoteBatchResult
	if req.Vehicle != nil {
		vehicle := &domain.Vehicle{
			VehicleID:    req.Vehicle.VehicleID,
			Source:       domain.ParseAuctionSource(req.Vehicle.Source),
			Yard:         req.Vehicle.Yard,
			Price:        req.Vehicle.Price,
			TypeText:     req.Vehicle.VehicleType,
			CategoryHint: req.Vehicle.CategoryHint,
			LotURL:       req.Vehicle.LotURL,
		}
		batch, err = h.Orchestrator.ComputeQuotesForVehicle(r.Context(), vehicle, companies, req.Port)
	} else {
		source := domain.ParseAuctionSource(req.Source)
		batch, err = h.Orchestrator.ComputeQuotesForAddress(r.Context(), req.Address, source, companies, req.Port)
	}

	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("compute quotes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.QuoteBatchResponse{
		DistanceMiles:  batch.Distance.Miles,
		Port:           batch.Distance.Port,
		DistanceSource: string(batch.Distance.Source),
		Quotes:         make([]dto.QuoteResponse, 0, len(batch.Quotes)),
	}
	for _, q := range batch.Quotes {
		res.Quotes = append(res.Quotes, dto.QuoteResponse{
			CompanyID:    q.CompanyID,
			CompanyName:  q.CompanyName,
			Total:        q.Total,
			Currency:     q.Currency,
			DeliveryDays: q.DeliveryDays,
			Breakdown:    q.Breakdown,
			Status:       string(q.Status),
			Note:         q.Note,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
