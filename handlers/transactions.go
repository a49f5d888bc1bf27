// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type TransactionHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewTransactionHandler(st *store.Store, cfg cliparse.Config) *TransactionHandler {
	return &TransactionHandler{store: st, cfg: cfg}
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateTransactionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	tx := h.store.CreateTransaction(store.TransactionInput{
		FromWallet:      req.FromWallet,
		ToWallet:        req.ToWallet,
		Amount:          req.Amount,
		ContentID:       req.ContentID,
		TransactionType: req.TransactionType,
		Status:          req.Status,
	})

	// A completed transaction pays the content owner; tell them.
	if tx.Status == models.TxStatusCompleted {
		if content, ok := h.store.GetContent(tx.ContentID); ok {
			h.store.CreateNotification(store.NotificationInput{
				UserID:    content.CreatorID,
				Type:      models.NotifRevenueReceived,
				Title:     "Revenue received",
				Message:   "\"" + content.Title + "\" earned revenue",
				ActionURL: h.cfg.BaseURL + "/content/" + content.ContentID,
			})
		}
	}

	slog.Info("transaction created",
		"transaction_id", tx.TransactionID,
		"content_id", tx.ContentID,
		"type", tx.TransactionType,
		"status", tx.Status,
	)
	middleware.JSONResponse(w, http.StatusCreated, tx)
}

// GetTransactionsByContent handles GET /content/{id}/transactions
func (h *TransactionHandler) GetTransactionsByContent(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	if _, ok := h.store.GetContent(contentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	txs := h.store.GetTransactionsByContent(contentID)
	middleware.JSONResponse(w, http.StatusOK, txs)
}

// GetTransactionsByWallet handles GET /wallets/{address}/transactions
func (h *TransactionHandler) GetTransactionsByWallet(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "wallet address is required")
		return
	}

	txs := h.store.GetTransactionsByWallet(address)
	middleware.JSONResponse(w, http.StatusOK, txs)
}

// RevenueStats handles GET /stats/revenue
func (h *TransactionHandler) RevenueStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.RevenueStats())
}
