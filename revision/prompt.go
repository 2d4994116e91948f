package revision

import "strings"

const rolePrompt = "あなたはビジネス文書の添削専門家です。以下の催促・リマインド文面を添削してください。"

const formatPrompt = `以下のJSON形式で回答してください（JSONのみ、他のテキストは不要）：
{
  "revised": "添削後の文面（改行は\nで表現）",
  "feedback": "改善ポイントの説明（Markdown形式の箇条書きで3-5点。例: - **ポイント1**: 説明\n- **ポイント2**: 説明）"
}`

// BuildPrompt composes the instruction sent to the model.
// originalText must be non-empty after trimming; callers validate first.
func BuildPrompt(originalText string, tone ToneVariant) string {
	var sb strings.Builder
	sb.WriteString(rolePrompt)
	sb.WriteString("\n\n【トーン設定】\n")
	sb.WriteString(tone.Instruction)
	sb.WriteString("\n\n【添削対象の文面】\n")
	sb.WriteString(originalText)
	sb.WriteString("\n\n")
	sb.WriteString(formatPrompt)
	return sb.String()
}
