package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"robux_topup/pkg/logx"
)

func TestNewJSON(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, logx.FormatJSON, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Error("checkout failed", logx.Error(errors.New("boom")), slog.Int64(logx.FieldRobuxAmount, 400))

	var line map[string]any

	rq.NoError(jsoniter.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	rq.Equal("checkout failed", line["msg"])
	rq.Equal("boom", line["err"])
	rq.InDelta(400, line[logx.FieldRobuxAmount], 0)
}

func TestNewText(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, logx.FormatText, slog.LevelDebug)
	logger.Debug("quote computed", slog.Int64(logx.FieldRobuxAmount, 800))

	rq.Contains(buf.String(), "quote computed")
	rq.Contains(buf.String(), "800")
}
