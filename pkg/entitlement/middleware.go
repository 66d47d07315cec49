package entitlement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/roles"
)

// OrgIDURLParam is the chi route parameter the middleware reads the
// organization ID from when it is not already in the context.
const OrgIDURLParam = "orgID"

// denialResponse is the JSON body returned for 403s. Reason lets the
// client distinguish "you can't" (role) from "your plan can't" (feature,
// quota, trial) and render the right remediation.
type denialResponse struct {
	Error   string `json:"error"`
	Reason  Reason `json:"reason"`
	Current *int64 `json:"current,omitempty"`
	Limit   *int64 `json:"limit,omitempty"`
	Upgrade bool   `json:"upgrade,omitempty"`
}

// RequirePermission returns middleware that denies the request unless
// the actor holds the permission in the current organization. Faults
// surface as 503, denials as 403 with a machine-readable reason.
func RequirePermission(engine Engine, perm roles.Permission) func(http.Handler) http.Handler {
	return requireCheck(engine, func(actorID, orgID uuid.UUID) CheckRequest {
		return CheckRequest{ActorID: actorID, OrgID: orgID, Permission: perm}
	})
}

// RequireResource returns middleware for resource-creating routes: it
// verifies the permission and that one more unit of the resource fits
// under the plan ceiling. The handler must still route the actual create
// through a quota reserver; this check only fails fast.
func RequireResource(engine Engine, perm roles.Permission, res plan.Resource) func(http.Handler) http.Handler {
	return requireCheck(engine, func(actorID, orgID uuid.UUID) CheckRequest {
		return CheckRequest{ActorID: actorID, OrgID: orgID, Permission: perm, Resource: res, Delta: 1}
	})
}

func requireCheck(engine Engine, build func(actorID, orgID uuid.UUID) CheckRequest) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			actorID, ok := GetActorIDFromContext(ctx)
			if !ok {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			orgID, ok := GetOrgIDFromContext(ctx)
			if !ok {
				parsed, err := uuid.Parse(chi.URLParam(r, OrgIDURLParam))
				if err != nil {
					http.Error(w, "unknown organization", http.StatusBadRequest)
					return
				}
				orgID = parsed
			}

			decision, err := engine.Check(ctx, build(actorID, orgID))
			if err != nil {
				// Infrastructure fault, not a policy denial: retryable.
				http.Error(w, "entitlement check unavailable", http.StatusServiceUnavailable)
				return
			}

			if !decision.Allowed {
				writeDenial(w, decision)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeDenial(w http.ResponseWriter, decision Decision) {
	resp := denialResponse{
		Error:  "forbidden",
		Reason: decision.Reason,
	}

	switch decision.Reason {
	case ReasonQuotaExceeded:
		resp.Current = &decision.Current
		resp.Limit = &decision.Limit
		resp.Upgrade = true
	case ReasonPlanFeatureDisabled, ReasonTrialExpired:
		resp.Upgrade = true
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(resp)
}
