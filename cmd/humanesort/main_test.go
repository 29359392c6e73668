package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/humane-sort/internal/apperr"
	"github.com/DjordjeVuckovic/humane-sort/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		input string
		want  string
	}{
		{
			name:  "natural order",
			input: "something-11\nsomething-1\nsomething-2\n",
			want:  "something-1\nsomething-2\nsomething-11\n",
		},
		{
			name:  "reverse",
			cfg:   config.Config{Reverse: true},
			input: "13-zzzz\n1-ffff\n12-aaaa\n",
			want:  "13-zzzz\n12-aaaa\n1-ffff\n",
		},
		{
			name:  "unique by value",
			cfg:   config.Config{Unique: true},
			input: "v7\nv007\nv10\n",
			want:  "v7\nv10\n",
		},
		{
			name:  "skip empty",
			cfg:   config.Config{SkipEmpty: true},
			input: "b\n\n  \na\n",
			want:  "a\nb\n",
		},
		{
			name:  "blank lines sort first",
			input: "b\n\na\n",
			want:  "\na\nb\n",
		},
		{
			name:  "key field",
			cfg:   config.Config{KeyField: 2},
			input: "x chapter-10\ny chapter-9\nz chapter-1\n",
			want:  "z chapter-1\ny chapter-9\nx chapter-10\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := tt.cfg
			require.NoError(t, run(&cfg, nil, strings.NewReader(tt.input), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_OutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("page10\npage2\n"), 0o644))

	cfg := config.Config{Output: out}
	require.NoError(t, run(&cfg, []string{in}, strings.NewReader(""), io.Discard))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "page2\npage10\n", string(data))
}

func TestRun_MissingInput(t *testing.T) {
	var cfg config.Config
	err := run(&cfg, []string{filepath.Join(t.TempDir(), "missing.txt")}, nil, io.Discard)
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	cli, err := parseFlags([]string{"-reverse", "-k", "3", "a.txt", "b.txt"}, io.Discard)
	require.NoError(t, err)

	assert.True(t, cli.Reverse)
	assert.Equal(t, 3, cli.KeyField)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cli.Files)
	assert.True(t, cli.set["reverse"])
	assert.False(t, cli.set["unique"])

	_, err = parseFlags([]string{"-no-such-flag"}, io.Discard)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanesort.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reverse: true\nunique: true\nkey_field: 2\n"), 0o644))

	t.Setenv("ENV_PATH", "")
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvReverse, "")
	t.Setenv(config.EnvUnique, "false")
	t.Setenv(config.EnvSkipEmpty, "")

	t.Run("file, env, then flags", func(t *testing.T) {
		cli, err := parseFlags([]string{"-k", "1"}, io.Discard)
		require.NoError(t, err)

		cfg, err := cli.resolve()
		require.NoError(t, err)
		assert.True(t, cfg.Reverse)
		assert.False(t, cfg.Unique)
		assert.Equal(t, 1, cfg.KeyField)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		cli, err := parseFlags([]string{"-k", "-2"}, io.Discard)
		require.NoError(t, err)

		_, err = cli.resolve()
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "key_field", ve.Field)
	})
}
