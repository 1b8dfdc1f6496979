package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SatyamKumarChoudhary/chat-bot/api/http/presenter"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/chat"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

var (
	errNotJSON        = errors.New("invalid JSON payload")
	errPromptRequired = errors.New("prompt is required")
	errPromptType     = errors.New("prompt must be a string")
)

// isJSONContentType accepts a missing header, application/json and
// application/*+json, ignoring parameters such as charset.
func isJSONContentType(ctype string) bool {
	if ctype == "" {
		return true
	}
	mediaType, _, _ := strings.Cut(ctype, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == fiber.MIMEApplicationJSON ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// parsePromptRequest requires the exact key "prompt" holding a JSON string.
func parsePromptRequest(ctype string, body []byte) (promptRequest, error) {
	if !isJSONContentType(ctype) {
		return promptRequest{}, errNotJSON
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return promptRequest{}, errNotJSON
	}
	raw, ok := fields["prompt"]
	if !ok {
		return promptRequest{}, errPromptRequired
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return promptRequest{}, errPromptType
	}
	var req promptRequest
	if err := json.Unmarshal(raw, &req.Prompt); err != nil {
		return promptRequest{}, errPromptType
	}
	return req, nil
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat relays a prompt to the model and returns the generated text.
// @Summary Generate a reply for a prompt
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body promptRequest true "prompt payload"
// @Success 200 {object} chatResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	req, err := parsePromptRequest(c.Get(fiber.HeaderContentType), c.Body())
	if err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	}

	text, err := h.svc.Reply(c.Context(), req.Prompt)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, chatResponse{Response: text})
}
