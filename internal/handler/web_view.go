package handler

import (
	"sync"

	"pdf-summary-client/internal/domain"
)

// PageState is what the upload page currently shows.
type PageState struct {
	ProgressVisible bool
	ResultsVisible  bool
	Result          domain.ResultView
	SelectedFile    string
}

// WebView implements domain.View for the browser front end. The page is
// rendered from its state after every action; progress changes are also
// pushed live through the hub.
type WebView struct {
	hub *ProgressHub

	mu           sync.Mutex
	state        PageState
	notification string
}

// NewWebView creates a view publishing to hub, which may be nil.
func NewWebView(hub *ProgressHub) *WebView {
	return &WebView{hub: hub}
}

func (v *WebView) ShowProgress() {
	v.update(func(s *PageState) { s.ProgressVisible = true })
}

func (v *WebView) HideProgress() {
	v.update(func(s *PageState) { s.ProgressVisible = false })
}

func (v *WebView) ShowResults(result domain.ResultView) {
	v.update(func(s *PageState) {
		s.ResultsVisible = true
		s.Result = result
	})
}

func (v *WebView) HideResults() {
	v.update(func(s *PageState) {
		s.ResultsVisible = false
		s.Result = domain.ResultView{}
	})
}

func (v *WebView) ClearSelection() {
	v.update(func(s *PageState) { s.SelectedFile = "" })
}

// Notify stores a blocking notification shown on the next render.
func (v *WebView) Notify(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notification = userMessage(err)
}

// Select records the name of the file the user picked.
func (v *WebView) Select(filename string) {
	v.update(func(s *PageState) { s.SelectedFile = filename })
}

// Snapshot returns a copy of the page state.
func (v *WebView) Snapshot() PageState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// TakeNotification returns the pending notification and clears it.
func (v *WebView) TakeNotification() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := v.notification
	v.notification = ""
	return n
}

func (v *WebView) update(fn func(s *PageState)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	before := progressEvent(v.state)
	fn(&v.state)
	if after := progressEvent(v.state); v.hub != nil && after != before {
		v.hub.Publish(after)
	}
}

func progressEvent(s PageState) ProgressEvent {
	switch {
	case s.ProgressVisible:
		return ProgressEvent{Busy: true, Phase: domain.PhaseBusy}
	case s.ResultsVisible:
		return ProgressEvent{Phase: domain.PhaseShowingResults}
	default:
		return ProgressEvent{Phase: domain.PhaseIdle}
	}
}
