package api

import "encoding/json"

// SpeakRequest is decoded loosely so that a field of the wrong JSON type
// reports the same validation message as a missing one.
type SpeakRequest struct {
	Text json.RawMessage `json:"text"`

	Voice json.RawMessage `json:"voice"`
}

type Voice struct {
	ID json.RawMessage `json:"id"`
}

// validate returns the text and voice id, checking text first.
func (r *SpeakRequest) validate() (string, string, error) {
	text := stringValue(r.Text)

	if text == "" {
		return "", "", errMissingText
	}

	var voice Voice

	if err := json.Unmarshal(r.Voice, &voice); err != nil {
		return "", "", errMissingVoice
	}

	id := stringValue(voice.ID)

	if id == "" {
		return "", "", errMissingVoice
	}

	return text, id, nil
}

// stringValue returns the value if data is a JSON string, otherwise "".
func stringValue(data json.RawMessage) string {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return ""
	}

	return s
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
