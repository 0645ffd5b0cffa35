package internal

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// ExtractMessages parses the byte range [offset, EOF) of a conversation
// file into messages and returns the new offset. An I/O error leaves the
// offset unchanged so the next cycle retries; malformed lines are skipped.
// Lines have no length cap; assistant turns carrying embedded file contents
// can run long. The returned offset is the raw end of file at read time, so
// a final line still missing its newline is consumed in one piece and
// dropped if it does not decode.
func ExtractMessages(path string, offset int64) ([]Message, int64) {
	f, err := os.Open(path)
	if err != nil {
		return nil, offset
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, offset
	}

	var messages []Message
	for _, line := range bytes.Split(data, []byte("\n")) {
		messages = append(messages, parseRecordLine(line)...)
	}

	return messages, offset + int64(len(data))
}

// parseRecordLine decodes one JSONL line into zero or more messages.
func parseRecordLine(line []byte) []Message {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil
	}

	// agent side-channel records carry agentId
	if rec.AgentID != "" {
		return nil
	}
	if rec.Message == nil {
		return nil
	}

	var msgs []Message
	switch rec.Type {
	case "user":
		for _, item := range rec.Message.Content {
			if item.Type != "text" {
				continue
			}
			text := strings.TrimSpace(item.Text)
			// injected IDE/tool metadata, not something the user typed
			if text == "" || strings.HasPrefix(text, "<") || strings.HasPrefix(text, "This may or may not") {
				continue
			}
			msgs = append(msgs, Message{
				Actor:     "user",
				Text:      text,
				Timestamp: rec.Timestamp,
				ID:        rec.UUID,
			})
		}
	case "assistant":
		for _, item := range rec.Message.Content {
			if item.Type != "text" {
				continue
			}
			text := strings.TrimSpace(item.Text)
			if text == "" {
				continue
			}
			msgs = append(msgs, Message{
				Actor:     "assistant",
				Text:      text,
				Timestamp: rec.Timestamp,
				ID:        rec.UUID,
			})
		}
	}
	return msgs
}
