package erpnext

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SyncCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/resource/Customer", r.URL.Path)
		assert.Equal(t, "token key:secret", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Acme Construction", payload["customer_name"])
		assert.Equal(t, "acme@test.com", payload["email_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"name": "CUST-0007"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "secret", 5*time.Second)
	name, err := client.SyncCustomer(context.Background(), &domain.Customer{
		Name:  "Acme Construction",
		Email: "acme@test.com",
		Phone: "555-0100",
	})
	assert.NoError(t, err)
	assert.Equal(t, "CUST-0007", name)
}

func TestClient_CreateSalesInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Doctype with a space must be path-escaped.
		assert.Equal(t, "/api/resource/Sales%20Invoice", r.URL.EscapedPath())

		var payload SalesInvoice
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "CUST-0007", payload.Customer)
		assert.Len(t, payload.Items, 1)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"name": "SINV-0001"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "secret", 5*time.Second)
	name, err := client.CreateSalesInvoice(context.Background(), SalesInvoice{
		Customer:    "CUST-0007",
		PostingDate: "2026-03-31",
		Items:       []SalesInvoiceItem{{ItemName: "Excavator", Qty: 1, Rate: 800}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "SINV-0001", name)
}

func TestClient_ErrorResponses(t *testing.T) {
	t.Run("Server error includes body snippet", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "permission denied", http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key", "secret", 5*time.Second)
		_, err := client.SyncCustomer(context.Background(), &domain.Customer{Name: "Acme"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("Missing document name", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key", "secret", 5*time.Second)
		_, err := client.SyncCustomer(context.Background(), &domain.Customer{Name: "Acme"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing document name")
	})
}
