package authorization

import (
	"net/http"
	"strings"

	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/httpapi"
)

// BuildForbiddenPayload collects what a denied request reports about
// the subject and the policies it is missing.
func BuildForbiddenPayload(r *http.Request, state *authz.ViewState, object, action string) ForbiddenPayload {
	payload := ForbiddenPayload{
		Error:     "forbidden",
		Message:   "Forbidden: " + strings.TrimSpace(object+" "+authz.NormalizeAction(action)),
		Object:    object,
		Action:    authz.NormalizeAction(action),
		Subject:   resolveSubject(state, ""),
		Domain:    resolveDomain(state, ""),
		RequestID: httpapi.RequestID(nil, r),
	}
	payload.MissingPolicies = normalizePolicies(state, object, action)
	if payload.MissingPolicies == nil {
		payload.MissingPolicies = []authz.MissingPolicy{}
	}
	return payload
}

// WriteForbidden answers a denied request with a JSON payload when the
// client asks for JSON and with the Unauthorized view otherwise.
func WriteForbidden(w http.ResponseWriter, r *http.Request, object, action string) {
	state := authz.ViewStateFromContext(r.Context())
	pageCtx, hasPageCtx := composables.TryUsePageCtx(r.Context())
	if state == nil && hasPageCtx {
		state = pageCtx.AuthzState()
	}
	payload := BuildForbiddenPayload(r, state, object, action)
	payload.RequestID = httpapi.RequestID(w, r)

	if httpapi.WantsJSON(r) {
		if err := httpapi.WriteJSON(w, http.StatusForbidden, payload); err != nil {
			composables.TryUseLogger(r.Context()).WithError(err).Warn("failed to encode forbidden response")
		}
		return
	}

	props := &UnauthorizedProps{
		State:      state,
		Object:     payload.Object,
		Action:     payload.Action,
		RequestURL: r.URL.String(),
		Subject:    payload.Subject,
		Domain:     payload.Domain,
		RequestID:  payload.RequestID,
	}
	if hasPageCtx {
		props.Title = pageCtx.TSafe("Authz.Unauthorized.Title")
		props.Message = pageCtx.TSafe("Authz.Unauthorized.Message")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	if err := Unauthorized(props).Render(w); err != nil {
		composables.TryUseLogger(r.Context()).WithError(err).Warn("failed to render forbidden response")
	}
}
