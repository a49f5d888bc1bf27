// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/handlers"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contentHandler := handlers.NewContentHandler(st, cfg)
	creatorHandler := handlers.NewCreatorHandler(st, cfg)
	remixHandler := handlers.NewRemixHandler(st, cfg)
	enhancementHandler := handlers.NewEnhancementHandler(st, cfg)
	transactionHandler := handlers.NewTransactionHandler(st, cfg)
	engagementHandler := handlers.NewEngagementHandler(st, cfg)
	pollHandler := handlers.NewPollHandler(st, cfg)
	notificationHandler := handlers.NewNotificationHandler(st, cfg)
	frameHandler := handlers.NewFrameHandler(st, cfg)

	limiter := middleware.NewRateLimiter(float64(cfg.RatePerSecond), cfg.RateBurst)

	// wrap applies the standard chain: logging, metrics, rate limiting
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(limiter.Middleware(h)))
	}

	// Health check and metrics stay outside the chain
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Content
	mux.HandleFunc("POST /content", wrap(contentHandler.CreateContent))
	mux.HandleFunc("GET /content", wrap(contentHandler.Feed))
	mux.HandleFunc("GET /content/{id}", wrap(contentHandler.GetContent))
	mux.HandleFunc("PATCH /content/{id}", wrap(contentHandler.UpdateContent))
	mux.HandleFunc("PUT /content/{id}/revenue-share", wrap(contentHandler.UpdateRevenueShare))
	mux.HandleFunc("GET /content/{id}/analytics", wrap(contentHandler.Analytics))
	mux.HandleFunc("GET /content/{id}/remixes", wrap(remixHandler.GetRemixesByContent))
	mux.HandleFunc("GET /content/{id}/enhancements", wrap(enhancementHandler.GetEnhancementsByContent))
	mux.HandleFunc("GET /content/{id}/transactions", wrap(transactionHandler.GetTransactionsByContent))
	mux.HandleFunc("GET /content/{id}/engagements", wrap(engagementHandler.GetEngagementsByContent))

	// Creators
	mux.HandleFunc("POST /creators", wrap(creatorHandler.CreateCreator))
	mux.HandleFunc("GET /creators/{id}", wrap(creatorHandler.GetCreator))
	mux.HandleFunc("GET /creators/{id}/content", wrap(creatorHandler.GetCreatorContent))
	mux.HandleFunc("GET /creators/{id}/polls", wrap(creatorHandler.GetCreatorPolls))

	// Collaboration
	mux.HandleFunc("POST /remixes", wrap(remixHandler.CreateRemix))
	mux.HandleFunc("POST /remixes/{id}/approve", wrap(remixHandler.ApproveRemix))
	mux.HandleFunc("POST /enhancements", wrap(enhancementHandler.CreateEnhancement))
	mux.HandleFunc("POST /engagements", wrap(engagementHandler.CreateEngagement))

	// Revenue
	mux.HandleFunc("POST /transactions", wrap(transactionHandler.CreateTransaction))
	mux.HandleFunc("GET /wallets/{address}/transactions", wrap(transactionHandler.GetTransactionsByWallet))
	mux.HandleFunc("GET /stats/revenue", wrap(transactionHandler.RevenueStats))

	// Polls
	mux.HandleFunc("POST /polls", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", wrap(pollHandler.GetPoll))
	mux.HandleFunc("GET /polls/{id}/results", wrap(pollHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote", wrap(pollHandler.Vote))

	// Notifications
	mux.HandleFunc("GET /notifications", wrap(notificationHandler.ListNotifications))
	mux.HandleFunc("POST /notifications/{id}/read", wrap(notificationHandler.MarkRead))

	// Frame webhook
	mux.HandleFunc("POST /frame", wrap(frameHandler.HandleFrame))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remixshare API v1"))
	})

	return mux
}
