package revision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsToneAndText(t *testing.T) {
	text := "先日お送りした請求書の件ですが、まだ入金が確認できていません。"
	for _, tone := range Tones() {
		t.Run(string(tone.Key), func(t *testing.T) {
			p := BuildPrompt(text, tone)
			assert.Contains(t, p, tone.Instruction)
			assert.Contains(t, p, text)
			assert.True(t, strings.HasPrefix(p, rolePrompt))
			assert.Contains(t, p, `"revised"`)
			assert.Contains(t, p, `"feedback"`)
			assert.Contains(t, p, "JSONのみ")
		})
	}
}

func TestToneCatalog(t *testing.T) {
	all := Tones()
	assert.Len(t, all, 3)
	seen := map[ToneKey]bool{}
	for _, tone := range all {
		assert.False(t, seen[tone.Key], "duplicate key %s", tone.Key)
		seen[tone.Key] = true
		assert.NotEmpty(t, tone.Instruction)
	}

	_, ok := LookupTone(DefaultTone)
	assert.True(t, ok)
	_, ok = LookupTone("casual")
	assert.False(t, ok)

	assert.Equal(t, ToneStandard, NextTone(ToneSoft))
	assert.Equal(t, ToneSoft, NextTone(ToneFirm))

	all[0].Label = "changed"
	first, _ := LookupTone(ToneSoft)
	assert.Equal(t, "やわらかめ", first.Label, "Tones returns a copy")
}

func TestSampleCatalog(t *testing.T) {
	assert.Len(t, Samples(), 3)
	s, ok := SampleAt(0)
	assert.True(t, ok)
	assert.Equal(t, "支払い", s.Label)
	_, ok = SampleAt(3)
	assert.False(t, ok)
	assert.Len(t, Tips(), 4)
}
