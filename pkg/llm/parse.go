package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type genreReply struct {
	Genres *[]string `json:"genres"`
}

// parseGenres validates a model reply. Only content that is not valid JSON
// is malformed; valid JSON without a genres list (including non-objects) is
// reported as missing genres. A genres value that is not a list of strings
// is treated as malformed. The list length is not checked; the prompt asks
// for five but nothing enforces it.
func parseGenres(content string) ([]string, error) {
	if content == "" {
		return nil, ErrEmptyReply
	}

	data := []byte(content)
	if !json.Valid(data) {
		return nil, ErrMalformedReply
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &MissingGenresError{Payload: compactJSON(content)}
	}

	var reply genreReply
	if err := json.Unmarshal(trimmed, &reply); err != nil {
		return nil, fmt.Errorf("%w: genres is not a list of strings: %v", ErrMalformedReply, err)
	}

	if reply.Genres == nil {
		return nil, &MissingGenresError{Payload: compactJSON(content)}
	}

	return *reply.Genres, nil
}

func compactJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(content)); err != nil {
		return content
	}
	return buf.String()
}

// cleanJSONResponse strips code fences and prose some models wrap around JSON.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
