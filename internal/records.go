package internal

// Message is a single conversational turn extracted from a logged record.
// Messages are immutable once created and discarded after rendering.
type Message struct {
	Actor     string // "user" or "assistant"
	Text      string
	Timestamp string // record timestamp, may be empty
	ID        string // record uuid, may be empty
}

// ContentItem is one entry of a record's message content array.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// MessageBody is the message container of a logged record.
type MessageBody struct {
	Content []ContentItem `json:"content,omitempty"`
}

// Record is one line of a conversation file as written by Claude Code.
// Only the fields this tool reads are declared; everything else on the
// line is ignored.
type Record struct {
	Type      string       `json:"type"`
	AgentID   string       `json:"agentId,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
	UUID      string       `json:"uuid,omitempty"`
	Message   *MessageBody `json:"message,omitempty"`
}
