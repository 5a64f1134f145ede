package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"donation/internal/infra"
	"donation/internal/providers/checkout"
)

// CheckoutService is what the handlers need from the checkout provider.
type CheckoutService interface {
	CreateSession(ctx context.Context, req checkout.DonationRequest) checkout.Response
	RetrieveStatus(ctx context.Context, sessionID string) checkout.SessionStatus
}

type App struct {
	Checkout CheckoutService
	Logger   *infra.Logger
}

func NewApp(svc CheckoutService, logger *infra.Logger) *App {
	return &App{Checkout: svc, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, msg string) {
	a.json(w, code, map[string]string{"error": kind, "message": msg})
}
