package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestDumper(showOrigin bool) *QueryDumper {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewQueryDumper(log, showOrigin)
}

const talkTopics = `[
	{
		"type": "talk_topic",
		"id": "TALK_GATE",
		"condition": {"u_query": "Open the gate?"},
		"responses": [
			{"text": "Yes.", "condition": {"and": [{"npc_query": {"str": "Trust me?", "ctxt": "gate"}}, "u_male"]}},
			{"text": "No."},
			"not an object"
		]
	},
	{
		"type": "effect_on_condition",
		"id": "EOC_BELL",
		"condition": {"or": [{"not": {"u_query": {"str_sp": "Ring bells?"}}}]}
	},
	42
]`

func TestQueryDumper_DumpFile(t *testing.T) {
	path := writeTempFile(t, "talk.json", talkTopics)
	d := newTestDumper(false)

	require.NoError(t, d.DumpFile(path))

	var out bytes.Buffer
	require.NoError(t, d.Write(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"Query message shown in a popup: Open the gate?",
		"Query message shown in a popup: Trust me? (ctxt: gate)",
		"Query message shown in a popup: Ring bells? / Ring bells?",
		"3 query strings extracted from 1 files",
	}, lines)
}

func TestQueryDumper_ShowOrigin(t *testing.T) {
	path := writeTempFile(t, "single.json", `{"id": "x", "condition": {"u_query": "Hi"}}`)
	d := newTestDumper(true)

	require.NoError(t, d.DumpFile(path))

	var out bytes.Buffer
	require.NoError(t, d.Write(&out))
	assert.Contains(t, out.String(), path+": Query message shown in a popup: Hi")
}

func TestQueryDumper_SummaryFormatsLargeCounts(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 1200; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"condition": {"u_query": "q"}}`)
	}
	b.WriteString("]")

	d := newTestDumper(false)
	require.NoError(t, d.DumpFile(writeTempFile(t, "many.json", b.String())))

	var out bytes.Buffer
	require.NoError(t, d.Write(&out))
	assert.Contains(t, out.String(), "1,200 query strings extracted from 1 files")
}

func TestQueryDumper_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		errMsg   string
	}{
		{
			name:     "wrong extension",
			filename: "talk.yaml",
			content:  `{}`,
			errMsg:   "must have .json extension",
		},
		{
			name:     "invalid json",
			filename: "bad.json",
			content:  `{"condition":`,
			errMsg:   "invalid JSON",
		},
		{
			name:     "query that is not text",
			filename: "num.json",
			content:  `{"condition": {"u_query": 7}}`,
			errMsg:   "invalid translatable text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDumper(false)
			err := d.DumpFile(writeTempFile(t, tt.filename, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestQueryDumper_MissingFile(t *testing.T) {
	d := newTestDumper(false)
	err := d.DumpFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
