package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

var policyFlags = []string{
	"--model", "../../config/access/model.conf",
	"--policy", "../../config/access/policy.csv",
}

func TestShow_TreeForManager(t *testing.T) {
	args := append([]string{"show", "--user", "manager", "--url", "http://localhost/hrm/employees/3"}, policyFlags...)
	out := run(t, args...)

	assert.Contains(t, out, "- Dashboard /\n")
	assert.Contains(t, out, "  - Users /users\n")
	assert.NotContains(t, out, "/roles")
	assert.Contains(t, out, "* HRM\n")
	assert.Contains(t, out, "  * Employees /hrm/employees\n")
	assert.NotContains(t, out, "/logs")
}

func TestShow_JSONAnonymousHideEmpty(t *testing.T) {
	args := append([]string{"show", "--json", "--hide-empty", "--top", "--lang", "zh"}, policyFlags...)
	out := run(t, args...)

	var tree []menuNode
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "仪表盘", tree[0].Label)
	assert.True(t, tree[0].Active)
	assert.True(t, tree[0].Top)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "/settings/logo", tree[1].Children[0].URL)
}

func TestRequirements(t *testing.T) {
	out := run(t, "requirements")

	var reqs map[string][]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &reqs))
	assert.Len(t, reqs["menu"], 5)
	assert.Len(t, reqs["quickLinks"], 3)
}
