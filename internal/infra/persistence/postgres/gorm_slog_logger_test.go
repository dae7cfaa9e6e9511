package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines[len(lines)-1])

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func staticSQL(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failure is logged at error level", func(t *testing.T) {
		base, buf := captureLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT 1"), assert.AnError)

		record := lastRecord(t, buf)
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "SELECT 1", record["sql"])
	})

	t.Run("expected errors stay at debug", func(t *testing.T) {
		base, buf := captureLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT 1"), gorm.ErrRecordNotFound)
		assert.Equal(t, "DEBUG", lastRecord(t, buf)["level"])

		l.Trace(context.Background(), time.Now(), staticSQL("INSERT"), gorm.ErrDuplicatedKey)
		assert.Equal(t, "DEBUG", lastRecord(t, buf)["level"])
	})

	t.Run("slow statement is a warning", func(t *testing.T) {
		base, buf := captureLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), staticSQL("SELECT pg_sleep(1)"), nil)

		record := lastRecord(t, buf)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "Slow SQL statement", record["msg"])
	})

	t.Run("fast statements are silent outside debug mode", func(t *testing.T) {
		base, buf := captureLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT 1"), nil)

		assert.Zero(t, buf.Len())
	})

	t.Run("request logger is preferred", func(t *testing.T) {
		base, buf := captureLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newGormSlogLogger(base, cfg)

		ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-1")))
		l.Trace(ctx, time.Now(), staticSQL("SELECT 1"), nil)

		record := lastRecord(t, buf)
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "req-1", record["request_id"])
	})
}
