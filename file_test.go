package cliconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("full grammar", func(t *testing.T) {
		t.Parallel()
		c := New("",
			Flag("flag", ""),
			Opt[int]("num", ""),
			Multi[string]("def", ""),
		)

		input := strings.Join([]string{
			"# a comment line",
			"flag",
			"num = 42",
			"def = one",
			"def = two",
			"",
			"  # indented comments are fine",
		}, "\n")

		require.NoError(t, c.ParseConfig(strings.NewReader(input)))

		assert.Equal(t, 1, c.Count("flag"))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		vs, err := GetAll[string](c, "def")
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"one", "two"}, vs); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("first occurrence wins for non-multi options", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		require.NoError(t, c.ParseConfig(strings.NewReader("num = 1\nnum = 2\n")))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, 1, c.Count("num"), "the ignored duplicate is not counted")
	})

	t.Run("command line value blocks a config file value", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		require.NoError(t, c.Parse([]string{"test", "--num=1"}))
		require.NoError(t, c.ParseConfig(strings.NewReader("num = 2\n")))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("multi options keep appending across sources", func(t *testing.T) {
		t.Parallel()
		c := New("", Multi[string]("def,D", ""))
		require.NoError(t, c.Parse([]string{"test", "-Done"}))
		require.NoError(t, c.ParseConfig(strings.NewReader("def = two\ndef = three\n")))

		vs, err := GetAll[string](c, "def")
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two", "three"}, vs)
	})

	t.Run("malformed line", func(t *testing.T) {
		t.Parallel()
		c := New("", Flag("aap", ""))
		err := c.ParseConfig(strings.NewReader("aap !\n"))
		assert.ErrorIs(t, err, ErrInvalidConfigFile)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("garbage at line start", func(t *testing.T) {
		t.Parallel()
		c := New("", Flag("aap", ""))
		err := c.ParseConfig(strings.NewReader("aap\n= broken\n"))
		assert.ErrorIs(t, err, ErrInvalidConfigFile)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("flag given a value", func(t *testing.T) {
		t.Parallel()
		c := New("", Flag("flag", ""))
		err := c.ParseConfig(strings.NewReader("flag = yes\n"))
		assert.ErrorIs(t, err, ErrOptionDoesNotAcceptArgument)
	})

	t.Run("bare name of a value option", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		err := c.ParseConfig(strings.NewReader("num\n"))
		assert.ErrorIs(t, err, ErrMissingArgumentForOption)
	})

	t.Run("empty value is silently skipped", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		require.NoError(t, c.ParseConfig(strings.NewReader("num =\n")))
		assert.False(t, c.Has("num"))
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		c := New("", Flag("flag", ""))
		err := c.ParseConfig(strings.NewReader("nope = 1\n"))
		assert.ErrorIs(t, err, ErrUnknownOption)

		c.SetIgnoreUnknown(true)
		require.NoError(t, c.ParseConfig(strings.NewReader("nope = 1\n")))
		assert.False(t, c.Has("nope"))
	})

	t.Run("conversion failure", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		err := c.ParseConfig(strings.NewReader("num = abc\n"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()
		c := New("", Flag("flag", ""), Opt[int]("num", ""))
		require.NoError(t, c.ParseConfig(strings.NewReader("flag\r\nnum = 7\r\n")))

		assert.Equal(t, 1, c.Count("flag"))
		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[int]("num", ""))
		require.NoError(t, c.ParseConfig(strings.NewReader("num = 42")))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("value keeps inner whitespace", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[string]("msg", ""))
		require.NoError(t, c.ParseConfig(strings.NewReader("msg = hello there\n")))

		v, err := c.GetString("msg")
		require.NoError(t, err)
		assert.Equal(t, "hello there", v)
	})
}

func TestParseConfigFile(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("default name found in a search directory", func(t *testing.T) {
		t.Parallel()
		empty := t.TempDir()
		dir := t.TempDir()
		write(t, dir, "app.conf", "num = 11\n")

		c := New("", Opt[string]("config", ""), Opt[int]("num", ""))
		require.NoError(t, c.Parse([]string{"test"}))
		require.NoError(t, c.ParseConfigFile("config", "app.conf", []string{empty, dir}))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 11, v)
	})

	t.Run("explicit path overrides the default name", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := write(t, dir, "special.conf", "num = 22\n")

		c := New("", Opt[Path]("config", ""), Opt[int]("num", ""))
		require.NoError(t, c.Parse([]string{"test", "--config", path}))
		require.NoError(t, c.ParseConfigFile("config", "app.conf", []string{t.TempDir()}))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 22, v)
	})

	t.Run("explicit path that exists nowhere is an error", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[string]("config", ""), Opt[int]("num", ""))
		require.NoError(t, c.Parse([]string{"test", "--config", "no-such.conf"}))

		err := c.ParseConfigFile("config", "app.conf", []string{t.TempDir()})
		assert.ErrorIs(t, err, ErrConfigFileNotFound)
	})

	t.Run("absent default file is not an error", func(t *testing.T) {
		t.Parallel()
		c := New("", Opt[string]("config", ""), Opt[int]("num", ""))
		require.NoError(t, c.Parse([]string{"test"}))

		require.NoError(t, c.ParseConfigFile("config", "app.conf", []string{t.TempDir()}))
		assert.False(t, c.Has("num"))
	})

	t.Run("parse errors from the found file propagate", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		write(t, dir, "app.conf", "!!!\n")

		c := New("", Opt[string]("config", ""))
		err := c.ParseConfigFile("config", "app.conf", []string{dir})
		assert.ErrorIs(t, err, ErrInvalidConfigFile)
	})

	t.Run("first directory with the file wins", func(t *testing.T) {
		t.Parallel()
		dir1 := t.TempDir()
		dir2 := t.TempDir()
		write(t, dir1, "app.conf", "num = 1\n")
		write(t, dir2, "app.conf", "num = 2\n")

		c := New("", Opt[string]("config", ""), Opt[int]("num", ""))
		require.NoError(t, c.ParseConfigFile("config", "app.conf", []string{dir1, dir2}))

		v, err := Get[int](c, "num")
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})
}
