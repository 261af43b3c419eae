package domain

// DefaultFilename is the export filename used before the first successful submit.
const DefaultFilename = "document.pdf"

// DownloadFilename is the name the exported summary is delivered under.
const DownloadFilename = "summary.pdf"

// SummarizationResult is the summarization service's success response.
type SummarizationResult struct {
	Filename      string `json:"filename"`
	TextLength    int    `json:"text_length"`
	Summary       string `json:"summary"`
	ExtractedText string `json:"extracted_text"`
}

// ExportRequest is sent verbatim to the PDF export service.
type ExportRequest struct {
	Summary  string `json:"summary"`
	Filename string `json:"filename"`
}

// RemoteErrorBody is the optional failure body of both remote endpoints.
type RemoteErrorBody struct {
	Detail string `json:"detail"`
}

// UploadState is the workflow's mutable state.
type UploadState struct {
	SelectedFile *FileHandle
	LastSummary  string
	LastFilename string
}

// NewUploadState returns the initial state.
func NewUploadState() UploadState {
	return UploadState{LastFilename: DefaultFilename}
}

// ExportRequest builds the export payload from the last successful submit.
func (s UploadState) ExportRequest() ExportRequest {
	return ExportRequest{Summary: s.LastSummary, Filename: s.LastFilename}
}

// ResultView is the rendered form of a SummarizationResult.
type ResultView struct {
	Filename       string `json:"filename"`
	CharacterCount string `json:"character_count"`
	Summary        string `json:"summary"`
	ExtractedText  string `json:"extracted_text"`
}

// Phase is the workflow's coarse UI state.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseBusy           Phase = "busy"
	PhaseShowingResults Phase = "showing-results"
)
