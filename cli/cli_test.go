package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/navbar/errors"
	"github.com/grovetools/navbar/tui/theme"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardFlags(t *testing.T) {
	cmd := NewStandardCommand("navbar", "Navigation bar")
	require.NoError(t, cmd.ParseFlags([]string{"-v", "--json", "--config", "x.yml"}))

	opts := GetOptions(cmd)
	assert.Equal(t, CommandOptions{ConfigFile: "x.yml", Verbose: true, JSONOutput: true}, opts)
}

func TestInitConfig(t *testing.T) {
	path, err := InitConfig("explicit.yml")
	require.NoError(t, err)
	assert.Equal(t, "explicit.yml", path)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	cfgPath := filepath.Join(dir, "navbar.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("home_url: about:blank\n"), 0600))

	chdir(t, dir)

	found, err := InitConfig("")
	require.NoError(t, err)
	resolved, _ := filepath.EvalSymlinks(cfgPath)
	got, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, resolved, got)

	cmd := NewStandardCommand("navbar", "")
	cfg, _, err := LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "about:blank", cfg.HomeURL)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		verbose bool
		want    []string
	}{
		{
			name: "config not found",
			err:  errors.ConfigNotFound("/tmp/navbar.yml"),
			want: []string{"/tmp/navbar.yml", "--config"},
		},
		{
			name: "validation",
			err:  errors.New(errors.ErrCodeConfigValidation, "bad glyph"),
			want: []string{"Invalid configuration", "navbar schema"},
		},
		{
			name: "element not found",
			err:  errors.ElementNotFound("//nav"),
			want: []string{"No element matches //nav"},
		},
		{
			name:    "verbose details",
			err:     errors.InvalidModifier("hyper"),
			verbose: true,
			want:    []string{"Invalid input", "Error details", `"code": "INVALID_INPUT"`},
		},
		{
			name: "plain error",
			err:  assert.AnError,
			want: []string{"Error:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Verbose: tt.verbose, Out: &buf}

			assert.Equal(t, tt.err, h.Handle(tt.err))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}

	assert.NoError(t, NewErrorHandler(false).Handle(nil))
}

func TestWriteHelp(t *testing.T) {
	root := NewStandardCommand("navbar", "Navigation bar")
	sub := &cobra.Command{
		Use:   "render",
		Short: "Render the bar",
		Long:  "Render the bar as HTML.\n\nExamples:\n# text output\nnavbar render --text",
		Run:   func(*cobra.Command, []string) {},
	}
	sub.Flags().Int("width", 0, "Output width")
	root.AddCommand(sub)

	var buf bytes.Buffer
	writeHelp(&buf, root, theme.New("terminal"), 60)
	assert.Contains(t, buf.String(), "COMMANDS")
	assert.Contains(t, buf.String(), "render")

	buf.Reset()
	writeHelp(&buf, sub, theme.New("terminal"), 60)
	out := buf.String()
	assert.Contains(t, out, "NAVBAR RENDER")
	assert.Contains(t, out, "--width")
	assert.Contains(t, out, "EXAMPLES")
	assert.Contains(t, out, "text output")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "aaa bbb\nccc", wrapText("aaa bbb ccc", 7))
	assert.Equal(t, "short", wrapText("short", 0))
}
