package authorization

import (
	"strings"

	"github.com/iota-uz/iota-menu/pkg/authz"
)

func normalizePolicies(state *authz.ViewState, object, action string) []authz.MissingPolicy {
	if state == nil {
		return nil
	}
	if strings.TrimSpace(object) == "" && strings.TrimSpace(action) == "" {
		return state.MissingPolicies
	}
	normalizedObject := strings.ToLower(strings.TrimSpace(object))
	normalizedAction := authz.NormalizeAction(action)

	matched := make([]authz.MissingPolicy, 0, len(state.MissingPolicies))
	for _, policy := range state.MissingPolicies {
		if normalizedObject != "" && !strings.EqualFold(policy.Object, normalizedObject) {
			continue
		}
		if normalizedAction != "*" && policy.Action != normalizedAction {
			continue
		}
		matched = append(matched, policy)
	}
	if len(matched) == 0 {
		return state.MissingPolicies
	}
	return matched
}

func resolveSubject(state *authz.ViewState, provided string) string {
	subject := strings.TrimSpace(provided)
	if subject == "" && state != nil {
		subject = state.Subject
	}
	return subject
}

func resolveDomain(state *authz.ViewState, provided string) string {
	domain := strings.TrimSpace(provided)
	if domain == "" && state != nil {
		domain = state.Tenant
	}
	return domain
}

func operation(props *UnauthorizedProps) string {
	if props.Operation != "" {
		return props.Operation
	}
	return strings.TrimSpace(props.Object + " " + authz.NormalizeAction(props.Action))
}
