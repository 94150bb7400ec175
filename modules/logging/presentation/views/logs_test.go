package views

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/iota-menu/modules/logging/services"
	"github.com/iota-uz/iota-menu/pkg/types"
)

func render(t *testing.T, entries []services.LogEntry) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Logs(&types.PageContext{Locale: language.English}, entries).Render(&sb))
	return sb.String()
}

func TestLogs_Empty(t *testing.T) {
	t.Parallel()

	assert.Contains(t, render(t, nil), `class="logs-empty"`)
}

func TestLogs_SortsFields(t *testing.T) {
	t.Parallel()

	out := render(t, []services.LogEntry{{
		Time:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "sync failed",
		Fields:  logrus.Fields{"b": 2, "a": "x"},
	}})

	assert.Contains(t, out, `datetime="2026-01-02T03:04:05Z"`)
	assert.Contains(t, out, "<td>error</td>")
	assert.Contains(t, out, "<code>a=x b=2</code>")
}
