package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"robux_topup/pkg/contextx"
	"robux_topup/pkg/logx"
	"robux_topup/pkg/middlewarex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func chain(h http.Handler, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	h = middlewarex.Recovery(h)
	h = middlewarex.ResponseLogging(masker, logFieldMaxLen)(h)
	h = middlewarex.RequestLogging(masker, logFieldMaxLen)(h)
	h = middlewarex.Logger(h)
	h = middlewarex.TraceID(h)

	return h
}

func logLines(rq *require.Assertions, buf *bytes.Buffer) []map[string]any {
	var lines []map[string]any

	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var line map[string]any

		rq.NoError(json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}

	return lines
}

func TestMiddlewareChain(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"gamepassUrl":"https://www.roblox.com/game-pass/1"}`)) //nolint:errcheck
	}), 4096)

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/links",
		strings.NewReader(`{"username":"PlayerOne","discordUsername":"player#0001"}`))
	req = req.WithContext(contextx.WithLogger(context.Background(), base))
	req.Header.Set("X-Trace-Id", "trace-42")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	rq.Equal(http.StatusCreated, w.Code)
	rq.Equal("trace-42", w.Header().Get("X-Trace-Id"))

	lines := logLines(rq, &buf)
	rq.Len(lines, 2)

	request, response := lines[0], lines[1]

	rq.Equal(logx.FieldHTTPRequest, request["msg"])
	rq.Equal("trace-42", request[logx.FieldTraceID])
	rq.Equal(http.MethodPost, request[logx.FieldHTTPMethod])
	rq.Contains(request[logx.FieldRequestBody], `"discordUsername":"[MASKED]"`)
	rq.NotContains(request[logx.FieldRequestBody], "player#0001")

	rq.Equal(logx.FieldHTTPResponse, response["msg"])
	rq.InDelta(http.StatusCreated, response[logx.FieldResponseStatus], 0)
	rq.Contains(response[logx.FieldResponseBody], `"gamepassUrl":"[MASKED]"`)
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), 0)

	req := httptest.NewRequest(http.MethodGet, "/v1/tiers", http.NoBody)
	req = req.WithContext(contextx.WithLogger(context.Background(), base))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(w.Body.String(), w.Header().Get("X-Trace-Id"))
	rq.Contains(buf.String(), "panic in handler")
}
