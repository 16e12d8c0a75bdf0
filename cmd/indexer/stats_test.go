package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
)

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, model.Snapshot{Seekers: 12, Posts: 40}, talent.IndexStats{Seekers: 12, Posts: 38})

	out := buf.String()
	assert.Contains(t, out, "Collection")
	assert.Contains(t, out, "seekers")
	assert.Contains(t, out, "in sync")
	assert.Contains(t, out, "stale")
	assert.Contains(t, out, "38")
}

func TestStatsRow(t *testing.T) {
	assert.Equal(t, []string{"posts", "3", "3", "in sync"}, statsRow("posts", 3, 3))
	assert.Equal(t, []string{"posts", "3", "0", "stale"}, statsRow("posts", 3, 0))
}

func TestReindexArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "seekers", args: []string{"seekers"}},
		{name: "all", args: []string{"all"}},
		{name: "unknown target", args: []string{"companies"}, wantErr: true},
		{name: "missing target", args: nil, wantErr: true},
		{name: "two targets", args: []string{"posts", "seekers"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reindexCmd.ValidateArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["reindex"])
	assert.True(t, names["stats"])

	f := reindexCmd.Flags().Lookup("recreate")
	if assert.NotNil(t, f) {
		assert.Equal(t, "false", f.DefValue)
	}
}
