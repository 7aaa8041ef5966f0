package erpnext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"equiprent-backend/internal/domain"
)

// Client talks to an ERPNext instance over its REST resource API. It is
// deliberately thin: no retries, no caching; callers decide how to
// handle failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
}

// SalesInvoiceItem is one line of an outbound sales invoice. Rate is in
// currency units because ERPNext expects decimals, not cents.
type SalesInvoiceItem struct {
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Qty         int32   `json:"qty"`
	Rate        float64 `json:"rate"`
}

// SalesTaxCharge mirrors ERPNext "Sales Taxes and Charges" rows.
type SalesTaxCharge struct {
	ChargeType  string  `json:"charge_type"`
	AccountHead string  `json:"account_head"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

// SalesInvoice is the payload for creating a Sales Invoice document.
type SalesInvoice struct {
	Customer           string             `json:"customer"`
	PostingDate        string             `json:"posting_date"`
	Items              []SalesInvoiceItem `json:"items"`
	Taxes              []SalesTaxCharge   `json:"taxes,omitempty"`
	DiscountAmount     float64            `json:"discount_amount,omitempty"`
	Remarks            string             `json:"remarks,omitempty"`
	SetPostingTime     int                `json:"set_posting_time"`
	DocstatusSubmitted bool               `json:"-"`
}

type customerPayload struct {
	CustomerName string `json:"customer_name"`
	CustomerType string `json:"customer_type"`
	EmailID      string `json:"email_id,omitempty"`
	MobileNo     string `json:"mobile_no,omitempty"`
}

// documentResponse is the envelope ERPNext wraps every resource in.
type documentResponse struct {
	Data struct {
		Name string `json:"name"`
	} `json:"data"`
}

func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
	}
}

// SyncCustomer creates the customer document in ERPNext and returns the
// remote document name.
func (c *Client) SyncCustomer(ctx context.Context, customer *domain.Customer) (string, error) {
	payload := customerPayload{
		CustomerName: customer.Name,
		CustomerType: "Company",
		EmailID:      customer.Email,
		MobileNo:     customer.Phone,
	}
	return c.createDocument(ctx, "Customer", payload)
}

// CreateSalesInvoice creates a Sales Invoice document and returns its
// name, which becomes the rental's invoice id.
func (c *Client) CreateSalesInvoice(ctx context.Context, invoice SalesInvoice) (string, error) {
	return c.createDocument(ctx, "Sales Invoice", invoice)
}

func (c *Client) createDocument(ctx context.Context, doctype string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", doctype, err)
	}

	endpoint := c.baseURL + "/api/resource/" + url.PathEscape(doctype)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", c.apiKey, c.apiSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erpnext %s request: %w", doctype, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("erpnext %s returned %s: %s", doctype, resp.Status, snippet)
	}

	var doc documentResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("decode erpnext %s response: %w", doctype, err)
	}
	if doc.Data.Name == "" {
		return "", fmt.Errorf("erpnext %s response missing document name", doctype)
	}
	return doc.Data.Name, nil
}
