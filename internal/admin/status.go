package admin

// StatusMessage is the dismissible banner every manage/form screen shows.
type StatusMessage struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func successMessage(text string) StatusMessage {
	return StatusMessage{Text: text, Type: StatusSuccess}
}

func errorMessage(text string) StatusMessage {
	return StatusMessage{Text: text, Type: StatusError}
}

// Clear resets the banner, mirroring the dismiss button.
func (m *StatusMessage) Clear() {
	m.Text = ""
	m.Type = ""
}
