package gate

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// UserFunc extracts the acting user from the request.
// Returning false means the request is unauthenticated.
type UserFunc func(r *http.Request) (uuid.UUID, bool)

// denialResponse is the JSON body sent when a gated action is refused.
// It carries enough for the client to render an upgrade prompt naming the
// feature and its cap.
type denialResponse struct {
	Error   string     `json:"error"`
	Feature FeatureKey `json:"feature"`
	Limit   int64      `json:"limit"`
	Tier    Tier       `json:"tier"`
	Upgrade bool       `json:"upgrade"`
}

// Middleware gates the wrapped handler behind a feature's daily cap.
//
// The check runs before the handler and the counter is incremented only after
// the handler finishes with a 2xx status, matching the allow-act-increment
// flow. Store failures answer 503 with a retry message: the gate fails closed
// rather than silently allowing or blocking the action.
func Middleware(svc *Service, feature FeatureKey, userFn UserFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := userFn(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			day := Today()
			decision, err := svc.CanAccess(r.Context(), userID, feature, day)
			if err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{
					"error": "usage check unavailable, please retry",
				})
				return
			}

			if decision.Limit != Unlimited {
				w.Header().Set("X-Feature-Limit", strconv.FormatInt(decision.Limit, 10))
				w.Header().Set("X-Feature-Remaining", strconv.FormatInt(decision.Remaining, 10))
			}

			if !decision.Allowed {
				writeJSON(w, http.StatusPaymentRequired, denialResponse{
					Error:   "daily limit reached",
					Feature: feature,
					Limit:   decision.Limit,
					Tier:    decision.Tier,
					Upgrade: decision.Tier != TierPremium,
				})
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// Usage is recorded only for actions that actually succeeded.
			// An increment failure is not surfaced to the user: the action
			// already went through (accepted eventual-consistency gap).
			if rec.status < 300 && feature.Countable() {
				_ = svc.Increment(r.Context(), userID, feature, day)
			}
		})
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	return rec.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
