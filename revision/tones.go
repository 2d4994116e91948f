package revision

var tones = []ToneVariant{
	{
		Key:         ToneSoft,
		Label:       "やわらかめ",
		Emoji:       "🌸",
		Description: "関係維持重視",
		Instruction: "相手との関係を最優先に考え、非常に丁寧で柔らかい表現を使用してください。申し訳なさを前面に出し、お願いベースの文面にしてください。",
	},
	{
		Key:         ToneStandard,
		Label:       "ふつう",
		Emoji:       "✉️",
		Description: "バランス型",
		Instruction: "ビジネスマナーに沿った標準的な丁寧さで、要件を明確に伝えつつも礼儀正しい表現を使用してください。",
	},
	{
		Key:         ToneFirm,
		Label:       "しっかり",
		Emoji:       "📋",
		Description: "緊急性重視",
		Instruction: "緊急性や重要性を明確に伝えつつも、失礼にならない範囲で強めの表現を使用してください。期限や影響を具体的に示してください。",
	},
}

// Tones returns the tone catalog in display order.
func Tones() []ToneVariant {
	out := make([]ToneVariant, len(tones))
	copy(out, tones)
	return out
}

// LookupTone finds a tone variant by key.
func LookupTone(key ToneKey) (ToneVariant, bool) {
	for _, t := range tones {
		if t.Key == key {
			return t, true
		}
	}
	return ToneVariant{}, false
}

// NextTone returns the key after key in display order, wrapping around.
func NextTone(key ToneKey) ToneKey {
	for i, t := range tones {
		if t.Key == key {
			return tones[(i+1)%len(tones)].Key
		}
	}
	return DefaultTone
}
