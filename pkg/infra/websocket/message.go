package websocket

// ModerationMessage is a client frame on the streaming moderation socket. A
// plain text frame that is not JSON is treated as Content.
type ModerationMessage struct {
	ID             string `json:"id,omitempty"`
	Content        string `json:"content"`
	ModerationType string `json:"moderation_type,omitempty"`
}

// ErrorMessage is sent back when a frame cannot be moderated.
type ErrorMessage struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
