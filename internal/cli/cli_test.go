package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/classics/internal/cli"
)

type stdio struct {
	Out bytes.Buffer
	Err bytes.Buffer
}

func sampleFs() afero.Fs {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "lines.txt", []byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"), 0644)
	afero.WriteFile(fs, "blank.txt", []byte("a\n\nb\n"), 0644)
	afero.WriteFile(fs, "dups.txt", []byte("a\na\nb\n"), 0644)
	afero.WriteFile(fs, "quote.txt", []byte("I don't want the world. I just want your half.\r\n"), 0644)
	return fs
}

func execute(cmd *cobra.Command, stdin string, args ...string) (*stdio, int) {
	var sio stdio
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&sio.Out)
	cmd.SetErr(&sio.Err)
	return &sio, cli.Execute(cmd)
}

func TestParsePositive(t *testing.T) {
	data := []struct {
		Input string
		Want  int
		Err   bool
	}{
		{Input: "3", Want: 3},
		{Input: "10", Want: 10},
		{Input: "bla", Err: true},
		{Input: "0", Err: true},
		{Input: "-1", Err: true},
		{Input: "", Err: true},
		{Input: "1.5", Err: true},
		{Input: " 5", Err: true},
		{Input: "5 ", Err: true},
	}
	for _, d := range data {
		got, err := cli.ParsePositive(d.Input)
		if d.Err {
			if err == nil {
				t.Errorf("%q: expected error, got %d", d.Input, got)
			} else if err.Error() != d.Input {
				t.Errorf("%q: error should be the offending value, got %q", d.Input, err)
			}
			continue
		}
		if err != nil || got != d.Want {
			t.Errorf("%q: want %d, got %d (%v)", d.Input, d.Want, got, err)
		}
	}
}

func TestCat(t *testing.T) {
	data := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "plain",
			Args: []string{"blank.txt"},
			Want: "a\n\nb\n",
		},
		{
			Name: "number",
			Args: []string{"-n", "blank.txt"},
			Want: "     1\ta\n     2\t\n     3\tb\n",
		},
		{
			Name: "nonblank-overrides-number",
			Args: []string{"-n", "--number-nonblank", "blank.txt"},
			Want: "     1\ta\n\n     2\tb\n",
		},
		{
			Name: "stdin",
			Args: []string{"-n", "-"},
			Want: "     1\tfrom stdin\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			sio, code := execute(cli.NewCat(sampleFs()), "from stdin\n", d.Args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, d.Want, sio.Out.String())
			assert.Empty(t, sio.Err.String())
		})
	}
}

func TestHead(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", sio.Out.String())
	})
	t.Run("bytes", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "hello world", "-c", "5")
		require.Equal(t, 0, code)
		assert.Equal(t, "hello", sio.Out.String())
	})
	t.Run("multiple", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "-n", "1", "lines.txt", "blank.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "==> lines.txt <==\n1\n\n==> blank.txt <==\na\n", sio.Out.String())
	})
	t.Run("env", func(t *testing.T) {
		t.Setenv("CLASSICS_HEAD_LINES", "2")
		sio, code := execute(cli.NewHead(sampleFs()), "", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n2\n", sio.Out.String())
	})
	t.Run("illegal-lines", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "-n", "0", "lines.txt")
		assert.Equal(t, 1, code)
		assert.Empty(t, sio.Out.String())
		assert.Contains(t, sio.Err.String(), "illegal line count -- 0")
		assert.Contains(t, sio.Err.String(), "Usage:")
	})
	t.Run("illegal-bytes", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "-c", "foo", "lines.txt")
		assert.Equal(t, 1, code)
		assert.Contains(t, sio.Err.String(), "illegal byte count -- foo")
	})
	t.Run("conflict", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "-n", "1", "-c", "1", "lines.txt")
		assert.Equal(t, 1, code)
		assert.Empty(t, sio.Out.String())
	})
}

func TestWc(t *testing.T) {
	t.Run("quote", func(t *testing.T) {
		sio, code := execute(cli.NewWc(sampleFs()), "", "-lwm", "quote.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "       1      10      48 quote.txt\n", sio.Out.String())
	})
	t.Run("total", func(t *testing.T) {
		sio, code := execute(cli.NewWc(sampleFs()), "", "blank.txt", "dups.txt")
		require.Equal(t, 0, code)
		want := "       3       2       5 blank.txt\n" +
			"       3       3       6 dups.txt\n" +
			"       6       5      11 total\n"
		assert.Equal(t, want, sio.Out.String())
	})
	t.Run("missing", func(t *testing.T) {
		sio, code := execute(cli.NewWc(sampleFs()), "", "-l", "blank.txt", "nope.txt", "dups.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "       3 blank.txt\n       3 dups.txt\n       6 total\n", sio.Out.String())
		assert.True(t, strings.HasPrefix(sio.Err.String(), "nope.txt: "))
	})
	t.Run("stdin", func(t *testing.T) {
		sio, code := execute(cli.NewWc(sampleFs()), "a b\n", "-w")
		require.Equal(t, 0, code)
		assert.Equal(t, "       2\n", sio.Out.String())
	})
	t.Run("bytes-and-chars", func(t *testing.T) {
		_, code := execute(cli.NewWc(sampleFs()), "", "-c", "-m", "blank.txt")
		assert.Equal(t, 1, code)
	})
}

func TestUniq(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		sio, code := execute(cli.NewUniq(sampleFs()), "", "-c", "dups.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "   2 a\n   1 b\n", sio.Out.String())
	})
	t.Run("stdin", func(t *testing.T) {
		sio, code := execute(cli.NewUniq(sampleFs()), "x\nx\n")
		require.Equal(t, 0, code)
		assert.Equal(t, "x\n", sio.Out.String())
	})
	t.Run("output-file", func(t *testing.T) {
		fs := sampleFs()
		sio, code := execute(cli.NewUniq(fs), "", "--count", "dups.txt", "out.txt")
		require.Equal(t, 0, code)
		assert.Empty(t, sio.Out.String())

		got, err := afero.ReadFile(fs, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, "   2 a\n   1 b\n", string(got))
	})
	t.Run("too-many-args", func(t *testing.T) {
		_, code := execute(cli.NewUniq(sampleFs()), "", "a", "b", "c")
		assert.Equal(t, 1, code)
	})
}

func TestIsUsage(t *testing.T) {
	assert.False(t, cli.IsUsage(nil))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cli.NewLogger(false, &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	cli.NewLogger(true, &buf).Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "shown")
}

func TestDebugFlag(t *testing.T) {
	sio, code := execute(cli.NewWc(sampleFs()), "", "--debug", "-l", "blank.txt", "nope.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "       3 blank.txt\n       3 total\n", sio.Out.String())
	assert.Contains(t, sio.Err.String(), "configuration loaded")
	assert.Contains(t, sio.Err.String(), "skip input")
	assert.Contains(t, sio.Err.String(), "nope.txt: ")
}

func TestHeadModePrecedence(t *testing.T) {
	t.Run("lines-flag-over-bytes-env", func(t *testing.T) {
		t.Setenv("CLASSICS_HEAD_BYTES", "3")
		sio, code := execute(cli.NewHead(sampleFs()), "", "-n", "2", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n2\n", sio.Out.String())
	})
	t.Run("bytes-env", func(t *testing.T) {
		t.Setenv("CLASSICS_HEAD_BYTES", "3")
		sio, code := execute(cli.NewHead(sampleFs()), "", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n2", sio.Out.String())
	})
	t.Run("bytes-flag-over-lines-env", func(t *testing.T) {
		t.Setenv("CLASSICS_HEAD_LINES", "1")
		sio, code := execute(cli.NewHead(sampleFs()), "", "-c", "4", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n2\n", sio.Out.String())
	})
}

func configFs(config string) afero.Fs {
	fs := sampleFs()
	afero.WriteFile(fs, "/etc/classics.toml", []byte(config), 0644)
	return fs
}

func TestConfigFile(t *testing.T) {
	const config = `
[head]
lines = 2

[wc]
words = true

[cat]
number = true
`
	data := []struct {
		Name string
		Cmd  func(afero.Fs) *cobra.Command
		Env  map[string]string
		Args []string
		Want string
	}{
		{
			Name: "head-file",
			Cmd:  cli.NewHead,
			Args: []string{"lines.txt"},
			Want: "1\n2\n",
		},
		{
			Name: "head-flag-over-file",
			Cmd:  cli.NewHead,
			Args: []string{"-n", "3", "lines.txt"},
			Want: "1\n2\n3\n",
		},
		{
			Name: "head-env-over-file",
			Cmd:  cli.NewHead,
			Env:  map[string]string{"CLASSICS_HEAD_LINES": "4"},
			Args: []string{"lines.txt"},
			Want: "1\n2\n3\n4\n",
		},
		{
			Name: "head-flag-over-env",
			Cmd:  cli.NewHead,
			Env:  map[string]string{"CLASSICS_HEAD_LINES": "4"},
			Args: []string{"-n", "1", "lines.txt"},
			Want: "1\n",
		},
		{
			Name: "wc-file",
			Cmd:  cli.NewWc,
			Args: []string{"blank.txt"},
			Want: "       2 blank.txt\n",
		},
		{
			Name: "cat-file",
			Cmd:  cli.NewCat,
			Args: []string{"blank.txt"},
			Want: "     1\ta\n     2\t\n     3\tb\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			for k, v := range d.Env {
				t.Setenv(k, v)
			}
			args := append([]string{"--config", "/etc/classics.toml"}, d.Args...)
			sio, code := execute(d.Cmd(configFs(config)), "", args...)
			require.Equal(t, 0, code, sio.Err.String())
			assert.Equal(t, d.Want, sio.Out.String())
		})
	}
}

func TestConfigFileErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "--config", "/etc/nope.toml", "lines.txt")
		assert.Equal(t, 1, code)
		assert.Empty(t, sio.Out.String())
		assert.Contains(t, sio.Err.String(), "config:")
	})
	t.Run("illegal-value", func(t *testing.T) {
		sio, code := execute(cli.NewHead(configFs("[head]\nlines = 0\n")), "", "--config", "/etc/classics.toml", "lines.txt")
		assert.Equal(t, 1, code)
		assert.Contains(t, sio.Err.String(), "illegal line count -- 0")
	})
	t.Run("no-default-config", func(t *testing.T) {
		sio, code := execute(cli.NewHead(sampleFs()), "", "-n", "1", "lines.txt")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n", sio.Out.String())
	})
}

func TestEcho(t *testing.T) {
	data := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "single",
			Args: []string{"Hello there"},
			Want: "Hello there\n",
		},
		{
			Name: "single-no-newline",
			Args: []string{"Hello there", "-n"},
			Want: "Hello there",
		},
		{
			Name: "many",
			Args: []string{"Hello", "there"},
			Want: "Hello there\n",
		},
		{
			Name: "many-no-newline",
			Args: []string{"Hello", "there", "-n"},
			Want: "Hello there",
		},
		{
			Name: "separator",
			Args: []string{"-s", ",", "a", "b", "c"},
			Want: "a,b,c\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			sio, code := execute(cli.NewEcho(sampleFs()), "", d.Args...)
			require.Equal(t, 0, code)
			assert.Equal(t, d.Want, sio.Out.String())
			assert.Empty(t, sio.Err.String())
		})
	}
}

func TestEchoNoArgs(t *testing.T) {
	sio, code := execute(cli.NewEcho(sampleFs()), "")
	assert.Equal(t, 1, code)
	assert.Empty(t, sio.Out.String())
	assert.Contains(t, sio.Err.String(), "Usage:")
}
