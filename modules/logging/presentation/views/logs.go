package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/modules/logging/services"
	"github.com/iota-uz/iota-menu/pkg/types"
)

func fields(e services.LogEntry) string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, e.Fields[k])
	}
	return strings.Join(pairs, " ")
}

// Logs lists the recorded error entries, newest first.
func Logs(pc types.PageContextProvider, entries []services.LogEntry) g.Node {
	if len(entries) == 0 {
		return html.P(html.Class("logs-empty"), g.Text(pc.TSafe("Logs.Empty")))
	}
	return html.Table(
		html.Class("logs table"),
		html.TBody(
			g.Map(entries, func(e services.LogEntry) g.Node {
				return html.Tr(
					html.Td(g.El("time", g.Attr("datetime", e.Time.Format(time.RFC3339)), g.Text(e.Time.Format(time.DateTime)))),
					html.Td(g.Text(e.Level.String())),
					html.Td(g.Text(e.Message)),
					html.Td(html.Code(g.Text(fields(e)))),
				)
			}),
		),
	)
}
