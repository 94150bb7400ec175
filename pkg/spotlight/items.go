// Package spotlight implements the quick-jump search over the navigation
// menu and extra quick links.
package spotlight

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/iota-uz/iota-menu/components/icon"
	"github.com/iota-uz/iota-menu/pkg/authz"
	"github.com/iota-uz/iota-menu/pkg/composables"
	"github.com/iota-uz/iota-menu/pkg/menu"
	"github.com/iota-uz/iota-menu/pkg/types"
)

// Item is a search hit.
type Item struct {
	Label string   `json:"label"`
	URL   string   `json:"url"`
	Icon  string   `json:"icon,omitempty"`
	Trail []string `json:"trail,omitempty"`
	Blank bool     `json:"blank,omitempty"`

	icon icon.Icon
}

// Render implements templ.Component.
func (i Item) Render(_ context.Context, w io.Writer) error {
	nodes := []g.Node{html.Href(i.URL), html.Class("spotlight-item flex items-center gap-2")}
	if i.Blank {
		nodes = append(nodes, html.Target("_blank"))
	}
	nodes = append(nodes,
		g.Raw(renderIcon(i.icon)),
		html.Span(g.Text(i.Label)),
	)
	if len(i.Trail) > 0 {
		nodes = append(nodes, html.Span(html.Class("text-xs text-gray-500"), g.Text(strings.Join(i.Trail, " / "))))
	}
	return html.A(nodes...).Render(w)
}

func renderIcon(ic icon.Icon) string {
	var sb strings.Builder
	_ = ic.Component(4).Render(context.Background(), &sb)
	return sb.String()
}

func NewQuickLink(ic icon.Icon, trKey, link string) *QuickLink {
	return &QuickLink{trKey: trKey, icon: ic, link: link}
}

// QuickLink is a search target that is not part of the menu.
type QuickLink struct {
	trKey       string
	icon        icon.Icon
	link        string
	authzObject string
	authzAction string
}

// RequireAuthz sets the authz object/action that governs the quick link visibility.
func (i *QuickLink) RequireAuthz(object, action string) *QuickLink {
	i.authzObject = object
	i.authzAction = action
	return i
}

func (i *QuickLink) action() string {
	if i.authzAction == "" {
		return "list"
	}
	return i.authzAction
}

func (i *QuickLink) allowed(pc types.PageContextProvider) bool {
	if strings.TrimSpace(i.authzObject) == "" {
		return true
	}
	return pc.CanAuthz(i.authzObject, i.action())
}

func (i *QuickLink) item(pc types.PageContextProvider) Item {
	label := pc.TSafe(i.trKey)
	if label == "" {
		label = i.trKey
	}
	return Item{Label: label, URL: i.link, Icon: i.icon.Name, icon: i.icon}
}

type QuickLinks struct {
	items []*QuickLink
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

// AuthzRequirements lists the distinct capabilities quick links are gated by.
func (ql *QuickLinks) AuthzRequirements() []authz.Capability {
	var caps []authz.Capability
	for _, link := range ql.items {
		if strings.TrimSpace(link.authzObject) == "" {
			continue
		}
		caps = append(caps, authz.Capability{
			Object: strings.ToLower(strings.TrimSpace(link.authzObject)),
			Action: authz.NormalizeAction(link.action()),
		})
	}
	return lo.Uniq(caps)
}

// Find ranks the visible menu items of the request together with the
// authorized quick links against q. Entries pointing to the same URL are
// reported once, menu entries first.
func (ql *QuickLinks) Find(ctx context.Context, q string) ([]Item, error) {
	pc, ok := composables.TryUsePageCtx(ctx)
	if !ok {
		return nil, nil
	}

	candidates, err := menuItems(ctx, pc)
	if err != nil {
		return nil, err
	}
	for _, link := range ql.items {
		if link.allowed(pc) {
			candidates = append(candidates, link.item(pc))
		}
	}
	candidates = lo.UniqBy(candidates, func(it Item) string { return it.URL })
	if len(candidates) == 0 {
		return nil, nil
	}

	words := lo.Map(candidates, func(it Item, _ int) string { return it.Label })
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Stable(ranks)

	result := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, candidates[rank.OriginalIndex])
	}
	return result, nil
}

func menuItems(ctx context.Context, pc types.PageContextProvider) ([]Item, error) {
	els, ok := composables.UseAllMenu(ctx)
	if !ok {
		return nil, nil
	}
	var out []Item
	var walk func(els menu.Elements, trail []string) error
	walk = func(els menu.Elements, trail []string) error {
		for _, el := range els {
			label, err := el.Label(pc)
			if err != nil {
				return fmt.Errorf("spotlight: %w", err)
			}
			switch v := el.(type) {
			case *menu.Group:
				if err := walk(v.Items(), append(trail[:len(trail):len(trail)], label)); err != nil {
					return err
				}
			case *menu.Item:
				u, err := v.URL()
				if err != nil {
					return fmt.Errorf("spotlight: %s: %w", label, err)
				}
				if u == "" {
					continue
				}
				out = append(out, Item{
					Label: label,
					URL:   u,
					Icon:  v.Icon().Name,
					Trail: trail,
					Blank: v.IsBlank(),
					icon:  v.Icon(),
				})
			}
		}
		return nil
	}
	if err := walk(els, nil); err != nil {
		return nil, err
	}
	return out, nil
}
