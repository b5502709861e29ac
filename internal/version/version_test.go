// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVars(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-03-01T09:00:00Z"},
		},
	}

	tests := []struct {
		name                     string
		version, commit, date    string
		wantVer, wantCom, wantDt string
	}{
		{
			name:    "unset values come from build info",
			version: "dev", commit: "none", date: "unknown",
			wantVer: "v0.4.1", wantCom: "0123456", wantDt: "2026-03-01T09:00:00Z",
		},
		{
			name:    "ldflags win",
			version: "1.2.3", commit: "abcdef0", date: "2026-01-01",
			wantVer: "1.2.3", wantCom: "abcdef0", wantDt: "2026-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVars(t, tt.version, tt.commit, tt.date)
			fill(info)
			assert.Equal(t, tt.wantVer, Version)
			assert.Equal(t, tt.wantCom, Commit)
			assert.Equal(t, tt.wantDt, Date)
		})
	}
}

func TestFill_Devel(t *testing.T) {
	withVars(t, "dev", "none", "unknown")
	fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "none", Commit)
}

func TestInfo(t *testing.T) {
	withVars(t, "1.0.0", "abc1234", "2026-03-01")
	assert.Contains(t, Info(), "formcraft version 1.0.0 (commit: abc1234, built: 2026-03-01")
	assert.Equal(t, "1.0.0", Short())
	assert.Equal(t, "1.0.0", Get().Version)
}
