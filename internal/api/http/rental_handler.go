package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/export"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental lifecycle over HTTP.
type RentalHandler struct {
	rentals   service.RentalService
	customers service.CustomerService
	payments  service.PaymentService
}

func NewRentalHandler(rentals service.RentalService, customers service.CustomerService, payments service.PaymentService) *RentalHandler {
	return &RentalHandler{
		rentals:   rentals,
		customers: customers,
		payments:  payments,
	}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return int32(id), nil
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.RentalFilter{
		Status:   domain.RentalStatus(q.Get("status")),
		Page:     1,
		PageSize: 20,
	}
	if v := q.Get("customer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid customer_id %q", v))
			return
		}
		filter.CustomerID = int32(id)
	}
	if v := q.Get("page"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 32); err == nil && p > 0 {
			filter.Page = int32(p)
		}
	}
	if v := q.Get("page_size"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 32); err == nil && p > 0 && p <= 100 {
			filter.PageSize = int32(p)
		}
	}

	rentals, total, err := h.rentals.ListRentals(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rentals": rentals,
		"total":   total,
		"page":    filter.Page,
	})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rental, items, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rental": rental,
		"items":  items,
	})
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RentalHandler) StatusLogs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logs, err := h.rentals.GetStatusLogs(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status_logs": logs})
}

func (h *RentalHandler) GenerateQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	quotation, err := h.rentals.GenerateQuotation(r.Context(), id, ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, quotation)
}

func (h *RentalHandler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	quotation, items, err := h.rentals.GetQuotation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"quotation": quotation,
		"items":     items,
	})
}

// ExportQuotation streams the quotation as an xlsx workbook.
func (h *RentalHandler) ExportQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	quotation, items, err := h.rentals.GetQuotation(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	rental, _, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), rental.CustomerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", quotation.QuotationNumber))
	if err := export.WriteQuotationWorkbook(w, quotation, items, customer); err != nil {
		writeError(w, http.StatusInternalServerError, err)
	}
}

// ExportSettlement streams the closeout statement as an xlsx workbook.
func (h *RentalHandler) ExportSettlement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rental, items, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), rental.CustomerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	payments, err := h.payments.ListPayments(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=settlement-%d.xlsx", rental.ID))
	if err := export.WriteSettlementWorkbook(w, rental, items, payments, customer); err != nil {
		writeError(w, http.StatusInternalServerError, err)
	}
}

// lifecycle wraps the simple status change endpoints.
func (h *RentalHandler) lifecycle(fn func(r *http.Request, id int32) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := fn(r, id); err != nil {
			writeError(w, http.StatusConflict, err)
			return
		}

		rental, _, err := h.rentals.GetRental(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, rental)
	}
}

func (h *RentalHandler) ApproveQuotation(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.ApproveQuotation(r.Context(), id, ActorFromContext(r.Context()))
	})(w, r)
}

func (h *RentalHandler) BeginMobilization(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.BeginMobilization(r.Context(), id, ActorFromContext(r.Context()))
	})(w, r)
}

func (h *RentalHandler) CompleteMobilization(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.CompleteMobilization(r.Context(), id, ActorFromContext(r.Context()))
	})(w, r)
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.StartRental(r.Context(), id, ActorFromContext(r.Context()))
	})(w, r)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.CompleteRental(r.Context(), id, ActorFromContext(r.Context()))
	})(w, r)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	// A missing body means no reason; that's allowed.
	_ = json.NewDecoder(r.Body).Decode(&body)

	h.lifecycle(func(r *http.Request, id int32) error {
		return h.rentals.CancelRental(r.Context(), id, ActorFromContext(r.Context()), body.Reason)
	})(w, r)
}

func (h *RentalHandler) RequestExtension(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		RequestedEndDate string `json:"requested_end_date"`
		Reason           string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	actor := ActorFromContext(r.Context())
	if actor == nil {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("extension requests require an authenticated actor"))
		return
	}

	request, err := h.rentals.RequestExtension(r.Context(), id, *actor, body.RequestedEndDate, body.Reason)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *RentalHandler) DecideExtension(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := h.rentals.DecideExtension(r.Context(), id, body.Approve, ActorFromContext(r.Context())); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "decided"})
}

func (h *RentalHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	invoiceID, err := h.rentals.CreateInvoice(r.Context(), id, ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"invoice_id": invoiceID})
}
