package authz

import (
	"context"
	"strings"
)

// MissingPolicy captures a denied object/action combination for the current subject/domain.
type MissingPolicy struct {
	Domain string `json:"domain"`
	Object string `json:"object"`
	Action string `json:"action"`
}

// ViewState exposes authorization information to presentation layers.
type ViewState struct {
	Subject         string          `json:"subject"`
	Tenant          string          `json:"tenant"`
	Capabilities    map[string]bool `json:"capabilities"`
	MissingPolicies []MissingPolicy `json:"missingPolicies"`
}

// NewViewState builds a ViewState for a subject/tenant pair.
func NewViewState(subject, tenant string) *ViewState {
	return &ViewState{
		Subject:      subject,
		Tenant:       tenant,
		Capabilities: map[string]bool{},
	}
}

// SetCapability stores a boolean flag (e.g. "core.users.list") for later template use.
func (v *ViewState) SetCapability(name string, allowed bool) {
	if v == nil {
		return
	}
	v.Capabilities[normalizeCapabilityKey(name)] = allowed
}

// Capability reports whether a capability was previously recorded as allowed.
func (v *ViewState) Capability(name string) bool {
	allowed, ok := v.CapabilityValue(name)
	return ok && allowed
}

// CapabilityValue returns the stored capability flag and whether it exists.
func (v *ViewState) CapabilityValue(name string) (bool, bool) {
	if v == nil {
		return false, false
	}
	allowed, ok := v.Capabilities[normalizeCapabilityKey(name)]
	return allowed, ok
}

func normalizeCapabilityKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddMissingPolicy appends a denied policy combination for unauthorized responses.
func (v *ViewState) AddMissingPolicy(policy MissingPolicy) {
	if v == nil {
		return
	}
	v.MissingPolicies = append(v.MissingPolicies, policy)
}

type viewStateContextKey struct{}

// WithViewState stores the provided ViewState in the context.
func WithViewState(ctx context.Context, state *ViewState) context.Context {
	if state == nil {
		return ctx
	}
	return context.WithValue(ctx, viewStateContextKey{}, state)
}

// ViewStateFromContext retrieves the ViewState if present.
func ViewStateFromContext(ctx context.Context) *ViewState {
	if ctx == nil {
		return nil
	}
	if state, ok := ctx.Value(viewStateContextKey{}).(*ViewState); ok {
		return state
	}
	return nil
}
