package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/composables"
)

// CapabilityResolver evaluates capabilities for a subject, see authz.Service.
type CapabilityResolver interface {
	Capabilities(ctx context.Context, subject, domain string, caps []authz.Capability) (*authz.ViewState, error)
}

// WithAuthzState precomputes the authz view state of the requesting user
// for every capability returned by requirements. The user is identified by
// userHeader; requests without it are evaluated as anonymous.
func WithAuthzState(resolver CapabilityResolver, userHeader string, requirements func() []authz.Capability) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				subject := authz.SubjectForUserID(uuid.Nil, r.Header.Get(userHeader))
				domain := authz.DomainFromTenant(uuid.Nil)

				state, err := resolver.Capabilities(ctx, subject, domain, requirements())
				if err != nil {
					composables.TryUseLogger(ctx).WithError(err).Error("failed to resolve authz capabilities")
					state = authz.NewViewState(subject, domain)
				}
				next.ServeHTTP(w, r.WithContext(composables.WithAuthzViewState(ctx, state)))
			},
		)
	}
}
