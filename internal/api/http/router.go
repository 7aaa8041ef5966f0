package http

import (
	"net/http"

	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter builds the API router. Everything under /api/v1 requires a
// valid bearer token except the health endpoint.
func NewRouter(
	rentals service.RentalService,
	customers service.CustomerService,
	payments service.PaymentService,
	tokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	rh := NewRentalHandler(rentals, customers, payments)
	api.HandleFunc("/rentals", rh.Create).Methods("POST")
	api.HandleFunc("/rentals", rh.List).Methods("GET")
	api.HandleFunc("/rentals/{id}", rh.Get).Methods("GET")
	api.HandleFunc("/rentals/{id}", rh.Delete).Methods("DELETE")
	api.HandleFunc("/rentals/{id}/status-logs", rh.StatusLogs).Methods("GET")

	api.HandleFunc("/rentals/{id}/quotation", rh.GenerateQuotation).Methods("POST")
	api.HandleFunc("/rentals/{id}/quotation", rh.GetQuotation).Methods("GET")
	api.HandleFunc("/rentals/{id}/quotation/export", rh.ExportQuotation).Methods("GET")
	api.HandleFunc("/rentals/{id}/quotation/approve", rh.ApproveQuotation).Methods("POST")

	api.HandleFunc("/rentals/{id}/mobilize", rh.BeginMobilization).Methods("POST")
	api.HandleFunc("/rentals/{id}/mobilize/complete", rh.CompleteMobilization).Methods("POST")
	api.HandleFunc("/rentals/{id}/start", rh.Start).Methods("POST")
	api.HandleFunc("/rentals/{id}/complete", rh.Complete).Methods("POST")
	api.HandleFunc("/rentals/{id}/cancel", rh.Cancel).Methods("POST")

	api.HandleFunc("/rentals/{id}/extensions", rh.RequestExtension).Methods("POST")
	api.HandleFunc("/extensions/{id}/decision", rh.DecideExtension).Methods("POST")

	api.HandleFunc("/rentals/{id}/invoice", rh.CreateInvoice).Methods("POST")
	api.HandleFunc("/rentals/{id}/settlement/export", rh.ExportSettlement).Methods("GET")

	ch := NewCustomerHandler(customers)
	api.HandleFunc("/customers", ch.Create).Methods("POST")
	api.HandleFunc("/customers", ch.List).Methods("GET")
	api.HandleFunc("/customers/{id}", ch.Get).Methods("GET")
	api.HandleFunc("/customers/{id}", ch.Update).Methods("PUT")
	api.HandleFunc("/customers/{id}/erp-sync", ch.SyncERP).Methods("POST")

	ph := NewPaymentHandler(payments)
	api.HandleFunc("/rentals/{id}/payments", ph.Record).Methods("POST")
	api.HandleFunc("/rentals/{id}/payments", ph.List).Methods("GET")
	api.HandleFunc("/payments/{id}/confirm", ph.Confirm).Methods("POST")
	api.HandleFunc("/payments/{id}/fail", ph.Fail).Methods("POST")

	return router
}
