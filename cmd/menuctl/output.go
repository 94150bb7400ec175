package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iota-uz/iota-menu/pkg/menu"
)

type menuNode struct {
	Label    string     `json:"label"`
	URL      string     `json:"url,omitempty"`
	Icon     string     `json:"icon,omitempty"`
	Badge    string     `json:"badge,omitempty"`
	Active   bool       `json:"active,omitempty"`
	Top      bool       `json:"top,omitempty"`
	Children []menuNode `json:"children,omitempty"`
}

func nodes(views []menu.View) []menuNode {
	out := make([]menuNode, 0, len(views))
	for _, v := range views {
		n := menuNode{
			Label:  v.Label,
			Icon:   v.Icon.Name,
			Active: v.Active,
			Top:    v.TopMode,
		}
		if u, ok := v.Data["url"].(string); ok {
			n.URL = u
		}
		if b, ok := v.Data["badge"].(string); ok {
			n.Badge = b
		}
		if v.IsGroup() {
			n.Children = nodes(v.Children)
		}
		out = append(out, n)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTree prints one node per line, "*" marking active entries.
func writeTree(w io.Writer, ns []menuNode, depth int) error {
	for _, n := range ns {
		marker := "-"
		if n.Active {
			marker = "*"
		}
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", depth), marker, n.Label)
		if n.URL != "" {
			line += " " + n.URL
		}
		if n.Badge != "" {
			line += " [" + n.Badge + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writeTree(w, n.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}
