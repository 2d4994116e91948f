package revision

import (
	"context"
	"encoding/json"
	"strings"
)

// MockLLM is a local stand-in that never calls an external model.
// It echoes the text under review back as the revision.
type MockLLM struct{}

func (MockLLM) Configured() bool { return true }

func (MockLLM) Complete(_ context.Context, prompt string) (string, error) {
	original := prompt
	if _, after, ok := strings.Cut(prompt, "【添削対象の文面】\n"); ok {
		original, _, _ = strings.Cut(after, "\n\n以下のJSON形式")
	}
	out, err := json.Marshal(Result{
		Revised:  "お世話になっております。\n" + strings.TrimSpace(original) + "\nお手数ですが、よろしくお願いいたします。",
		Feedback: "- **クッション言葉**: 冒頭に挨拶を追加しました\n- **締め**: 感謝の一文で締めくくりました",
	})
	if err != nil {
		return "", NewTransportError(err)
	}
	return "以下が添削結果です。\n" + string(out), nil
}
