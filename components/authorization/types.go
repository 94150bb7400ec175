package authorization

import "github.com/iota-uz/iota-menu/pkg/authz"

type UnauthorizedProps struct {
	State      *authz.ViewState
	Object     string
	Action     string
	Operation  string
	RequestURL string
	Subject    string
	Domain     string
	RequestID  string
	Title      string
	Message    string
}

// ForbiddenPayload is the JSON body of a denied request.
type ForbiddenPayload struct {
	Error           string                `json:"error"`
	Message         string                `json:"message"`
	Object          string                `json:"object"`
	Action          string                `json:"action"`
	Subject         string                `json:"subject"`
	Domain          string                `json:"domain"`
	RequestID       string                `json:"request_id,omitempty"`
	MissingPolicies []authz.MissingPolicy `json:"missing_policies"`
}
