package authorization

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/pkg/authz"
)

// Unauthorized renders the denial notice together with the policies the
// subject is missing for the requested object and action.
func Unauthorized(props *UnauthorizedProps) g.Node {
	title := props.Title
	if title == "" {
		title = "Unauthorized"
	}
	policies := normalizePolicies(props.State, props.Object, props.Action)
	subject := resolveSubject(props.State, props.Subject)
	domain := resolveDomain(props.State, props.Domain)

	return html.Section(
		html.Class("authz-unauthorized flex flex-col gap-4 p-6"),
		g.Attr("data-object", props.Object),
		g.Attr("data-action", props.Action),
		html.H1(html.Class("text-xl font-semibold"), g.Text(title)),
		g.If(props.Message != "", html.P(html.Class("text-gray-600"), g.Text(props.Message))),
		html.Dl(
			html.Class("grid grid-cols-2 gap-2 text-sm"),
			html.Dt(g.Text("Operation")), html.Dd(html.Code(g.Text(operation(props)))),
			g.If(subject != "", g.Group{html.Dt(g.Text("Subject")), html.Dd(html.Code(g.Text(subject)))}),
			g.If(domain != "", g.Group{html.Dt(g.Text("Domain")), html.Dd(html.Code(g.Text(domain)))}),
			g.If(props.RequestID != "", g.Group{html.Dt(g.Text("Request")), html.Dd(html.Code(g.Text(props.RequestID)))}),
		),
		g.If(len(policies) > 0, html.Ul(
			html.Class("authz-missing-policies list-disc pl-6 text-sm"),
			g.Map(policies, func(p authz.MissingPolicy) g.Node {
				return html.Li(html.Code(g.Textf("%s %s %s", p.Domain, p.Object, p.Action)))
			}),
		)),
	)
}
