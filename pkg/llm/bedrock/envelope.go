package bedrock

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// AnthropicVersion is the Bedrock request schema version for Anthropic models.
	AnthropicVersion = "bedrock-2023-05-31"
	MaxTokens        = 1000

	// NoTextFallback is returned when the response carries no usable text.
	NoTextFallback = "No text found in response."
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

func newInvokeRequest(prompt string) invokeRequest {
	return invokeRequest{
		AnthropicVersion: AnthropicVersion,
		MaxTokens:        MaxTokens,
		Messages:         []message{{Role: "user", Content: prompt}},
	}
}

// contentKind tags which shape the response "content" field had.
type contentKind int

const (
	contentAbsent contentKind = iota
	contentStructured
	contentPlainText
)

// jsonString decodes raw only when it is a JSON string literal.
func jsonString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

type responseContent struct {
	kind      contentKind
	firstText *string
	text      string
}

// decodeContent reads the "content" value. Object keys are matched exactly.
func decodeContent(data json.RawMessage) (responseContent, error) {
	var rc responseContent
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return rc, nil
	}
	switch trimmed[0] {
	case '[':
		var blocks []json.RawMessage
		if err := json.Unmarshal(trimmed, &blocks); err != nil {
			return rc, err
		}
		if len(blocks) == 0 {
			return rc, nil
		}
		rc.kind = contentStructured
		// A first block that is not an object, or whose "text" is not a
		// string (null included), leaves firstText nil.
		var block map[string]json.RawMessage
		if err := json.Unmarshal(blocks[0], &block); err == nil {
			if raw, ok := block["text"]; ok {
				if s, ok := jsonString(raw); ok {
					rc.firstText = &s
				}
			}
		}
	case '"':
		if err := json.Unmarshal(trimmed, &rc.text); err != nil {
			return rc, err
		}
		rc.kind = contentPlainText
	}
	return rc, nil
}

// extractText applies the fallback order: first block text, plain string, sentinel.
func extractText(body []byte) (string, error) {
	var out map[string]json.RawMessage
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response body: %w", err)
	}
	if out == nil {
		return "", errors.New("decode response body: not a JSON object")
	}
	raw, ok := out["content"]
	if !ok {
		return NoTextFallback, nil
	}
	content, err := decodeContent(raw)
	if err != nil {
		return "", fmt.Errorf("decode response content: %w", err)
	}
	switch content.kind {
	case contentStructured:
		if content.firstText != nil {
			return *content.firstText, nil
		}
	case contentPlainText:
		return content.text, nil
	}
	return NoTextFallback, nil
}
