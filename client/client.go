// Package client is a Go consumer of the quote API, covering the same
// surface the storefront account and admin pages use. It keeps pending
// quantity edits in a quoteflow.DraftStore and sends them to the server
// only on an explicit confirm, mirroring how the UI behaves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hanifmaulana/quotedesk/model"
	"github.com/hanifmaulana/quotedesk/quoteflow"
)

const maxErrorMessageLen = 140

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	drafts  *quoteflow.DraftStore
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		drafts:  NewDraftStore(),
	}
}

// NewDraftStore is exposed so callers sharing edits across clients can
// inject their own store via WithDrafts.
func NewDraftStore() *quoteflow.DraftStore {
	return quoteflow.NewDraftStore()
}

func (c *Client) WithDrafts(drafts *quoteflow.DraftStore) *Client {
	c.drafts = drafts
	return c
}

// APIError carries the HTTP status and the user-facing message
// extracted from the server error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quote api: %d: %s", e.StatusCode, e.Message)
}

// errorPayload matches the shapes the server family emits: either the
// enveloped {code, message, data: {message}} or a flat {error} body.
type errorPayload struct {
	Data struct {
		Message string `json:"message"`
	} `json:"data"`
	Err     string `json:"error"`
	Message string `json:"message"`
}

// errorMessage picks the first non-empty of data.message, error,
// message and truncates it for display.
func errorMessage(body []byte, statusCode int) string {
	var p errorPayload
	msg := ""
	if err := json.Unmarshal(body, &p); err == nil {
		switch {
		case p.Data.Message != "":
			msg = p.Data.Message
		case p.Err != "":
			msg = p.Err
		default:
			msg = p.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return truncate(msg, maxErrorMessageLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}

	// success envelope: {code, message, data}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *Client) GetQuote(ctx context.Context, quoteID uint64) (*model.QuoteView, error) {
	var view model.QuoteView
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/quotes/%d", quoteID), nil, &view); err != nil {
		return nil, err
	}
	// fresh server data invalidates pending edits for this quote
	c.drafts.ClearQuote(quoteID)
	return &view, nil
}

func (c *Client) CreateQuote(ctx context.Context, items []model.QuoteItemRequest) (*model.CreateQuoteResponse, error) {
	var res model.CreateQuoteResponse
	req := model.CreateQuoteRequest{Items: items}
	if err := c.do(ctx, http.MethodPost, "/quotes", &req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListQuotes(ctx context.Context, page, perPage int) (*model.QuoteListResponse, error) {
	var res model.QuoteListResponse
	path := fmt.Sprintf("/quotes?page=%d&per_page=%d", page, perPage)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdjustQty steps a pending local edit without touching the server.
func (c *Client) AdjustQty(quoteID uint64, item model.QuoteItemView, delta int64) int64 {
	pid := uint64(0)
	if item.ProductID != nil {
		pid = *item.ProductID
	}
	return c.drafts.AdjustQty(quoteID, pid, delta, maxQty(item), item.FallbackQty, quoteflow.AdjustOptions{})
}

// TypeQty replaces the displayed quantity with a typed value, leaving
// the upper bound open until ConfirmQuantities reclamps it.
func (c *Client) TypeQty(quoteID uint64, item model.QuoteItemView, typed int64) int64 {
	pid := uint64(0)
	if item.ProductID != nil {
		pid = *item.ProductID
	}
	return c.drafts.ReplaceQty(quoteID, pid, typed, maxQty(item), item.FallbackQty, quoteflow.AdjustOptions{AllowAboveMax: true})
}

// ConfirmQuantities commits every pending draft for the quote and sends
// the result to the server. Drafts survive a failed save so the edits
// are not lost; they are cleared on success only.
func (c *Client) ConfirmQuantities(ctx context.Context, view *model.QuoteView) error {
	req := model.UpdateQuantitiesRequest{}
	for _, item := range view.Items {
		if item.ProductID == nil {
			continue
		}
		qty, ok := c.drafts.CommitQty(view.ID, *item.ProductID, maxQty(item))
		if !ok {
			continue
		}
		req.Items = append(req.Items, model.ItemQtyRequest{ProductID: *item.ProductID, Qty: qty})
	}
	if len(req.Items) == 0 {
		return nil
	}

	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/quotes/%d/quantities", view.ID), &req, nil); err != nil {
		return err
	}
	c.drafts.ClearQuote(view.ID)
	return nil
}

func (c *Client) RecheckAvailability(ctx context.Context, quoteID uint64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/quotes/%d/recheck-availability", quoteID), nil, nil)
}

func (c *Client) UpdatePricing(ctx context.Context, quoteID uint64, req *model.UpdatePricingRequest) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/quotes/%d/pricing", quoteID), req, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, quoteID uint64, req *model.UpdateStatusRequest) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/quotes/%d/status", quoteID), req, nil)
}

func (c *Client) CancelQuote(ctx context.Context, quoteID uint64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/quotes/%d/cancel", quoteID), nil, nil)
}

func (c *Client) CreateOrderFromQuote(ctx context.Context, quoteID uint64) (*model.OrderFromQuoteResponse, error) {
	var res model.OrderFromQuoteResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/from-quote/%d", quoteID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AttachInvoice(ctx context.Context, quoteID uint64, invoiceNo string) (*model.AttachInvoiceResponse, error) {
	var res model.AttachInvoiceResponse
	req := model.AttachInvoiceRequest{InvoiceNo: invoiceNo}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/quotes/%d/manual-invoice", quoteID), &req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// maxQty is the editing ceiling for one line: the available amount once
// checked, otherwise the requested amount.
func maxQty(item model.QuoteItemView) int64 {
	if item.AvailableNow != nil {
		return *item.AvailableNow
	}
	return item.Qty
}
