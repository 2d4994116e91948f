package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedback = "- **ポイント1**: クッション言葉を追加\n- **ポイント2**: 期限を明記"

func TestHTMLRendersList(t *testing.T) {
	out, err := HTML(feedback)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<ul>")
	assert.Equal(t, 2, strings.Count(s, "<li>"))
	assert.Contains(t, s, "<strong>ポイント1</strong>")
}

func TestHTMLOmitsRawHTML(t *testing.T) {
	out, err := HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestTerminalKeepsText(t *testing.T) {
	out, err := Terminal(feedback, 60, "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "ポイント1")
	assert.Contains(t, out, "期限を明記")
}
