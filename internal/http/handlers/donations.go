package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"donation/internal/providers/checkout"
)

// DonationsCheckout creates a hosted checkout session for a donation.
// Both gateway outcomes answer 200; the body's status field is the only
// success/failure signal, matching the contract existing clients rely on.
func (a *App) DonationsCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkout.DonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	resp := a.Checkout.CreateSession(r.Context(), req)
	a.json(w, http.StatusOK, resp)
}

// DonationsCheckoutStatus reports the payment state of a previously created
// session, so the static success page can confirm the donation went through.
func (a *App) DonationsCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "missing session id")
		return
	}
	status := a.Checkout.RetrieveStatus(r.Context(), sessionID)
	a.json(w, http.StatusOK, status)
}
