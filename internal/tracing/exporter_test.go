package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestFileExporter_WritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	p, err := NewProvider(Config{
		Enabled:    true,
		Exporter:   "file",
		FilePath:   path,
		SampleRate: 1.0,
	})
	require.NoError(t, err)

	ctx, parent := p.Tracer().Start(context.Background(), SpanActivate)
	parent.SetAttributes(
		attribute.String(AttrTheme, "doom-one"),
		attribute.Int(AttrColorCount, 48),
	)
	_, child := p.Tracer().Start(ctx, SpanResolve)
	child.SetAttributes(attribute.String(AttrColorName, "highlight"))
	child.End()
	parent.End()

	// Shutdown flushes the batcher.
	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, records, 2)

	byName := make(map[string]SpanRecord)
	for _, rec := range records {
		byName[rec.Name] = rec
	}

	activate, ok := byName[SpanActivate]
	require.True(t, ok)
	require.Equal(t, "doom-one", activate.Attributes[AttrTheme])
	require.Empty(t, activate.ParentSpanID)

	resolve, ok := byName[SpanResolve]
	require.True(t, ok)
	require.Equal(t, activate.SpanID, resolve.ParentSpanID)
	require.Equal(t, activate.TraceID, resolve.TraceID)
}

func TestFileExporter_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "traces.jsonl")

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileExporter_ShutdownIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
}

func TestFileExporter_ExportEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")

	exp, err := NewFileExporter(path)
	require.NoError(t, err)
	defer func() { _ = exp.Shutdown(context.Background()) }()

	require.NoError(t, exp.ExportSpans(context.Background(), nil))
}
