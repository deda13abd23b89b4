// Package tracker exposes the tracking app's quota surface as a mountable
// router. The host mounts it under its own path and supplies authentication;
// this module only reads the user ID from the request context.
package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalabs/vitakit/pkg/gate"
	"github.com/vitalabs/vitakit/pkg/profile"
)

// Router creates the tracker module router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(authMiddleware) // must call tracker.SetUserIDToContext
//	r.Mount("/tracker", tracker.Router(gateSvc))
func Router(svc *gate.Service) chi.Router {
	r := chi.NewRouter()
	r.Get("/usage", usageHandler(svc))
	return r
}

// usageSummary is the quota dashboard payload: today's Decision per feature.
type usageSummary struct {
	Day    gate.Day                          `json:"day"`
	Tier   gate.Tier                         `json:"tier"`
	Quotas map[gate.FeatureKey]gate.Decision `json:"quotas"`
}

func usageHandler(svc *gate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		day := gate.Today()
		quotas, err := svc.Quotas(r.Context(), userID, day)
		if err != nil {
			switch {
			case errors.Is(err, profile.ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "profile not found, complete onboarding first")
			case errors.Is(err, gate.ErrStoreUnavailable):
				writeError(w, http.StatusServiceUnavailable, "usage data unavailable, please retry")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		summary := usageSummary{Day: day, Quotas: quotas}
		for _, d := range quotas {
			summary.Tier = d.Tier
			break
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(summary)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
