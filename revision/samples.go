package revision

var samples = []SampleText{
	{Label: "支払い", Text: "先日お送りした請求書の件ですが、まだ入金が確認できていません。確認お願いします。"},
	{Label: "返信", Text: "先週メールした件、返事もらえますか？急ぎなので早めにお願いします。"},
	{Label: "資料", Text: "資料の提出期限過ぎてますけど、いつ出せますか？"},
}

var tips = []string{
	"クッション言葉を添える",
	"相手を責めない表現",
	"期限・背景を具体的に",
	"感謝で締める",
}

// Samples returns the sample catalog in display order.
func Samples() []SampleText {
	out := make([]SampleText, len(samples))
	copy(out, samples)
	return out
}

// SampleAt returns the sample at index i.
func SampleAt(i int) (SampleText, bool) {
	if i < 0 || i >= len(samples) {
		return SampleText{}, false
	}
	return samples[i], true
}

// Tips returns the short writing tips shown under the form.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
