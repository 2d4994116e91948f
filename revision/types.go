package revision

// ToneKey identifies a tone variant in state and analytics labels.
type ToneKey string

const (
	ToneSoft     ToneKey = "soft"
	ToneStandard ToneKey = "standard"
	ToneFirm     ToneKey = "firm"
)

// DefaultTone is selected when a session starts.
const DefaultTone = ToneStandard

// ToneVariant is one politeness/urgency profile offered to the user.
type ToneVariant struct {
	Key         ToneKey
	Label       string
	Emoji       string
	Description string
	// Instruction is injected verbatim into the prompt.
	Instruction string
}

// SampleText is a canned input the user can load with one click.
type SampleText struct {
	Label string
	Text  string
}

// Result is the structured reply expected from the model.
// Feedback is Markdown source, interpreted only when rendered.
type Result struct {
	Revised  string `json:"revised"`
	Feedback string `json:"feedback"`
}

// State is the interactive state of one session.
type State struct {
	OriginalText string  `json:"original_text"`
	SelectedTone ToneKey `json:"selected_tone"`
	Loading      bool    `json:"loading"`
	ErrorMessage string  `json:"error_message"`
	RevisedText  string  `json:"revised_text"`
	FeedbackText string  `json:"feedback_text"`
}

// HasResult reports whether a results panel should be shown.
func (s State) HasResult() bool {
	return s.RevisedText != "" || s.FeedbackText != ""
}
