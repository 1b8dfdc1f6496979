package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/SatyamKumarChoudhary/chat-bot/api/http"
	"github.com/SatyamKumarChoudhary/chat-bot/api/http/handlers"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/chat"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/health"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/llm/bedrock"
)

// stubRuntime plays the Bedrock runtime with a canned body or error.
type stubRuntime struct {
	body string
	err  error
}

func (s stubRuntime) InvokeModel(context.Context, *bedrockruntime.InvokeModelInput, ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(s.body), ContentType: aws.String("application/json")}, nil
}

type checker struct{ err error }

func (c checker) Name() string                { return "stub" }
func (c checker) Check(context.Context) error { return c.err }

func newTestApp(rt stubRuntime, ready error) *fiber.App {
	app := apihttp.NewApp()
	llmClient := bedrock.New(rt, "anthropic.claude-3-sonnet-20240229-v1:0")
	apihttp.Register(app,
		handlers.NewChatHandler(chat.NewService(llmClient)),
		handlers.NewHealthHandler(health.NewService(checker{err: ready})),
	)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postChat(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestChatReturnsModelText(t *testing.T) {
	app := newTestApp(stubRuntime{body: `{"content":[{"text":"Hi there"}]}`}, nil)

	resp, body := do(t, app, postChat(`{"prompt": "Say hi"}`, "application/json"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"response": "Hi there"}`, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestChatAcceptsEmptyPrompt(t *testing.T) {
	app := newTestApp(stubRuntime{body: `{"content":[]}`}, nil)

	resp, body := do(t, app, postChat(`{"prompt": ""}`, "application/json"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"response": "No text found in response."}`, body)
}

func TestChatRejectsMalformedInput(t *testing.T) {
	app := newTestApp(stubRuntime{body: `{"content":"unused"}`}, nil)

	cases := []struct {
		name        string
		body        string
		contentType string
	}{
		{"not json", `prompt=hi`, "application/json"},
		{"missing prompt", `{"message": "hi"}`, "application/json"},
		{"null prompt", `{"prompt": null}`, "application/json"},
		{"wrong type", `{"prompt": 42}`, "application/json"},
		{"empty body", ``, "application/json"},
		{"plain text body", `{"prompt": "hi"}`, "text/plain"},
		{"capitalized key", `{"Prompt": "Say hi"}`, "application/json"},
		{"upper-case key", `{"PROMPT": "Say hi"}`, "application/json"},
		{"top-level array", `[{"prompt": "hi"}]`, "application/json"},
		{"null body", `null`, "application/json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := do(t, app, postChat(tc.body, tc.contentType))
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestChatAcceptsJSONWithoutContentType(t *testing.T) {
	app := newTestApp(stubRuntime{body: `{"content":[{"text":"Hi there"}]}`}, nil)

	for _, ctype := range []string{"", "application/json; charset=utf-8"} {
		resp, body := do(t, app, postChat(`{"prompt": "Say hi"}`, ctype))

		assert.Equal(t, http.StatusOK, resp.StatusCode, ctype)
		assert.JSONEq(t, `{"response": "Hi there"}`, body)
	}
}

func TestChatProviderFailureIsGeneric500(t *testing.T) {
	app := newTestApp(stubRuntime{err: errors.New("ThrottlingException: secret detail")}, nil)

	resp, body := do(t, app, postChat(`{"prompt": "Say hi"}`, "application/json"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Internal Server Error"}`, body)
	assert.NotContains(t, body, "secret detail")
}

func TestCORSPreflightAllowsAnyOrigin(t *testing.T) {
	app := newTestApp(stubRuntime{}, nil)

	for _, origin := range []string{"http://localhost:5173", "https://example.org"} {
		req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type,x-custom-header")

		resp, _ := do(t, app, req)

		assert.Less(t, resp.StatusCode, 300, origin)
		assert.Equal(t, origin, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
		assert.Contains(t, strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")), "content-type")
		assert.Contains(t, strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")), "x-custom-header")
	}
}

func TestCORSHeadersOnSimpleRequest(t *testing.T) {
	app := newTestApp(stubRuntime{body: `{"content":"direct string"}`}, nil)

	req := postChat(`{"prompt": "x"}`, "application/json")
	req.Header.Set("Origin", "https://example.org")
	resp, body := do(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"response": "direct string"}`, body)
	assert.Equal(t, "https://example.org", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthProbes(t *testing.T) {
	app := newTestApp(stubRuntime{}, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok"}`, body)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ready"}`, body)

	notReady := newTestApp(stubRuntime{}, errors.New("no credentials"))
	resp, body = do(t, notReady, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, "not_ready")
}

func TestUnknownRouteKeepsStatus(t *testing.T) {
	app := newTestApp(stubRuntime{}, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Not Found"}`, body)
}
