package authz

import (
	"strings"

	"github.com/google/uuid"
)

const (
	globalDomain          = "global"
	subjectTenantPrefix   = "tenant"
	subjectUserPrefix     = "user"
	objectSeparator       = "."
	subjectSeparator      = ":"
	defaultActionWildcard = "*"
)

// Request encapsulates all parameters required to evaluate a Casbin rule.
type Request struct {
	Subject string
	Domain  string
	Object  string
	Action  string
}

// NewRequest constructs a Request.
func NewRequest(subject, domain, object, action string) Request {
	return Request{
		Subject: subject,
		Domain:  domain,
		Object:  object,
		Action:  action,
	}
}

// Capability is an object/action pair a page needs to know about up front,
// e.g. to decide which menu entries are visible.
type Capability struct {
	Object string
	Action string
}

// Key returns the canonical "object.action" capability key.
func (c Capability) Key() string {
	return CapabilityKey(c.Object, c.Action)
}

// CapabilityKey builds the canonical "object.action" key used by ViewState.
func CapabilityKey(object, action string) string {
	object = strings.ToLower(strings.TrimSpace(object))
	if object == "" {
		object = "global.resource"
	}
	return object + objectSeparator + NormalizeAction(action)
}

// SubjectForUser builds a subject identifier in the form tenant:{tenantID}:user:{userID}.
func SubjectForUser(tenantID, userID uuid.UUID) string {
	userPart := "anonymous"
	if userID != uuid.Nil {
		userPart = userID.String()
	}
	return SubjectForUserID(tenantID, userPart)
}

// SubjectForUserID builds a subject identifier using a custom user identifier value.
func SubjectForUserID(tenantID uuid.UUID, userID string) string {
	tenantPart := DomainFromTenant(tenantID)
	userPart := strings.TrimSpace(userID)
	if userPart == "" {
		userPart = "anonymous"
	}
	return strings.Join([]string{subjectTenantPrefix, tenantPart, subjectUserPrefix, userPart}, subjectSeparator)
}

// DomainFromTenant converts a tenant ID into a casbin domain string.
func DomainFromTenant(id uuid.UUID) string {
	if id == uuid.Nil {
		return globalDomain
	}
	return strings.ToLower(id.String())
}

// ObjectName returns the canonical module.resource string, lowercased.
func ObjectName(module, resource string) string {
	module = strings.ToLower(strings.TrimSpace(module))
	resource = strings.ToLower(strings.TrimSpace(resource))
	if module == "" {
		module = "global"
	}
	if resource == "" {
		resource = "resource"
	}
	return module + objectSeparator + resource
}

// NormalizeAction returns a normalized action string.
func NormalizeAction(action string) string {
	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return defaultActionWildcard
	}
	return action
}
