package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		in   Info
		bi   debug.BuildInfo
		want Info
	}{
		{
			name: "fills unset fields",
			in:   Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
			bi: debug.BuildInfo{
				Main:     debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}, {Key: "vcs.time", Value: "2026-01-01"}},
			},
			want: Info{Version: "v1.2.0", Commit: "abc", BuildDate: "2026-01-01"},
		},
		{
			name: "linker values win",
			in:   Info{Version: "v9", Commit: "def", BuildDate: "today"},
			bi: debug.BuildInfo{
				Main:     debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			want: Info{Version: "v9", Commit: "def", BuildDate: "today"},
		},
		{
			name: "devel build",
			in:   Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
			bi:   debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "dev", Commit: "none", BuildDate: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			fillFromBuildInfo(&got, &tt.bi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	s := Info{Version: "v1", Commit: "abc"}.String()
	assert.Contains(t, s, "v1\n")
	assert.Contains(t, s, "Commit:    abc")
}
