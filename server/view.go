package server

import (
	"html/template"
	"strconv"
	"strings"

	"reminder_reviser/render"
	"reminder_reviser/revision"
)

// pageView is everything the template reads; it is derived from State only.
type pageView struct {
	SessionID    string
	State        revision.State
	Tones        []toneOption
	Samples      []revision.SampleText
	Tips         []string
	SubmitLocked bool
	FeedbackHTML template.HTML
}

type toneOption struct {
	revision.ToneVariant
	Selected bool
}

func newPageView(id string, st revision.State) (pageView, error) {
	v := pageView{
		SessionID:    id,
		State:        st,
		Samples:      revision.Samples(),
		Tips:         revision.Tips(),
		SubmitLocked: st.Loading || strings.TrimSpace(st.OriginalText) == "",
	}
	for _, t := range revision.Tones() {
		v.Tones = append(v.Tones, toneOption{ToneVariant: t, Selected: t.Key == st.SelectedTone})
	}
	if st.FeedbackText != "" {
		html, err := render.HTML(st.FeedbackText)
		if err != nil {
			return pageView{}, err
		}
		v.FeedbackHTML = html
	}
	return v, nil
}

var pageFuncs = template.FuncMap{
	"sampleAction": func(i int) string { return "sample:" + strconv.Itoa(i) },
	"toneAction":   func(k revision.ToneKey) string { return "tone:" + string(k) },
}
