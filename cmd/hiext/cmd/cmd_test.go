package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	hixerror "github.com/msto63/hiext/core/error"
	hixlog "github.com/msto63/hiext/core/log"
)

// run executes a fresh command tree and returns stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { hixlog.SetDefault(hixlog.New()) })

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"camel", []string{"text", "camel", "foo_bar_baz"}, "fooBarBaz\n"},
		{"upper-first", []string{"text", "upper-first", "hello"}, "Hello\n"},
		{"upper-first locale", []string{"text", "upper-first", "--locale", "tr", "istanbul"}, "\u0130stanbul\n"},
		{"trim", []string{"text", "trim", "  hi  "}, "hi\n"},
		{"truncate", []string{"text", "truncate", "-n", "5", "hello world"}, "hello...\n"},
		{"truncate short", []string{"text", "truncate", "-n", "5", "hi"}, "hi\n"},
		{"truncate trailing", []string{"text", "truncate", "-n", "5", "--trailing", "~", "hello world"}, "hello~\n"},
		{"urlencode", []string{"text", "urlencode", "a b&c=d"}, "a%20b&c=d\n"},
		{"split", []string{"text", "split", "a b"}, "a\nb\n"},
		{"split delimiter", []string{"text", "split", "-d", ",", "a,,b"}, "a\n\nb\n"},
		{"email valid", []string{"text", "email", "user@example.com"}, "true\n"},
		{"email invalid", []string{"text", "email", "not-an-email"}, "false\n"},
		{"count", []string{"text", "count", "cafe\u0301"}, "4\n"},
		{"date", []string{"text", "date", "2015-07-06T00:00:00+0000"}, "2015-07-06T00:00:00Z\n"},
		{"date format", []string{"text", "date", "-f", "dd.MM.yyyy", "--zone", "UTC", "06.07.2015"}, "2015-07-06T00:00:00Z\n"},
		{"char", []string{"text", "char", "hello", "1"}, "e\n"},
		{"strip", []string{"text", "strip", "<p>hi</p>"}, "hi\n"},
		{"strip policy", []string{"--renderer", "policy", "text", "strip", "<b>a</b> &amp; b"}, "a & b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("hiext %v error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("hiext %v = %q; want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestTextCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code hixerror.Code
	}{
		{"char out of range", []string{"text", "char", "hello", "5"}, hixerror.CodeOutOfRange},
		{"char negative", []string{"text", "char", "--", "hello", "-1"}, hixerror.CodeOutOfRange},
		{"char bad index", []string{"text", "char", "hello", "x"}, hixerror.CodeInvalidInput},
		{"date garbage", []string{"text", "date", "garbage"}, hixerror.CodeInvalidFormat},
		{"strip invalid utf-8", []string{"text", "strip", "<p>\xff</p>"}, hixerror.CodeInvalidFormat},
		{"strong bad color", []string{"text", "strong", "--color", "red", "<strong>x</strong>"}, hixerror.CodeInvalidFormat},
		{"unknown renderer", []string{"--renderer", "pdf", "text", "strip", "x"}, hixerror.CodeNotFound},
		{"bad log level", []string{"--log-level", "loud", "text", "trim", "x"}, hixerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			if !hixerror.HasCode(err, tt.code) {
				t.Errorf("hiext %v error = %v; want code %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestTextReadsStdin(t *testing.T) {
	got, _, err := run(t, "<p>from <b>stdin</b></p>\n", "text", "strip", "-")
	if err != nil {
		t.Fatalf("strip error = %v", err)
	}
	if got != "from stdin\n" {
		t.Errorf("strip = %q", got)
	}

	got, _, err = run(t, "foo_bar\r\n", "text", "camel")
	if err != nil || got != "fooBar\n" {
		t.Errorf("camel from stdin = %q, %v", got, err)
	}
}

func TestStrongSpans(t *testing.T) {
	got, _, err := run(t, "", "text", "strong", "--spans", "--size", "12", "--color", "#f00", "a <strong>b</strong>")
	if err != nil {
		t.Fatalf("strong error = %v", err)
	}
	want := "\"a \"\n\"b\" 12pt #F00 bold\n"
	if got != want {
		t.Errorf("strong --spans = %q; want %q", got, want)
	}

	got, _, err = run(t, "", "text", "strong", "a <strong>b</strong> c")
	if err != nil {
		t.Fatalf("strong error = %v", err)
	}
	if !strings.Contains(got, "a ") || !strings.Contains(got, "b") || strings.Contains(got, "<strong>") {
		t.Errorf("strong = %q", got)
	}
}

func TestStrongMultiline(t *testing.T) {
	got, _, err := run(t, "", "text", "strong", "a <strong>b\nlonger</strong>")
	if err != nil {
		t.Fatalf("strong error = %v", err)
	}
	plain := regexp.MustCompile("\x1b\\[[0-9;]*m").ReplaceAllString(got, "")
	if plain != "a b\nlonger\n" {
		t.Errorf("strong = %q; want lines without padding", plain)
	}
}

func TestIntCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"times", []string{"int", "times", "3"}, "1\n2\n3\n"},
		{"times zero", []string{"int", "times", "0"}, ""},
		{"times negative", []string{"int", "times", "--", "-2"}, ""},
		{"upto", []string{"int", "upto", "3", "5"}, "3\n4\n5\n"},
		{"upto empty", []string{"int", "upto", "5", "3"}, ""},
		{"downto", []string{"int", "downto", "5", "3"}, "5\n4\n3\n"},
		{"downto empty", []string{"int", "downto", "3", "5"}, ""},
		{"single", []string{"int", "upto", "7", "7"}, "7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("hiext %v error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("hiext %v = %q; want %q", tt.args, got, tt.want)
			}
		})
	}

	if _, _, err := run(t, "", "int", "upto", "a", "3"); !hixerror.HasCode(err, hixerror.CodeInvalidInput) {
		t.Errorf("upto with bad start error = %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiext.yaml")
	content := `
text:
  trailing: " >>"
markup:
  strong_color: "#00ff00"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	got, _, err := run(t, "", "--config", path, "text", "truncate", "-n", "2", "hello")
	if err != nil || got != "he >>\n" {
		t.Errorf("truncate with config = %q, %v", got, err)
	}

	got, _, err = run(t, "", "--config", path, "text", "strong", "--spans", "<strong>x</strong>")
	if err != nil || got != "\"x\" 14pt #00FF00 bold\n" {
		t.Errorf("strong with config = %q, %v", got, err)
	}

	t.Setenv("HIEXT_TEXT_TRAILING", "!")
	got, _, err = run(t, "", "--config", path, "text", "truncate", "-n", "2", "hello")
	if err != nil || got != "he!\n" {
		t.Errorf("environment should override the file, got %q, %v", got, err)
	}

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "text", "trim", "x")
	if !hixerror.HasCode(err, hixerror.CodeNotFound) {
		t.Errorf("missing config error = %v", err)
	}
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		env, value string
	}{
		{"HIEXT_LOG_LEVEL", "loud"},
		{"HIEXT_LOG_FORMAT", "xml"},
		{"HIEXT_TEXT_LOCALE", "not a locale"},
		{"HIEXT_TEXT_TIME_ZONE", "Mars/Olympus"},
		{"HIEXT_TEXT_DATE_FORMAT", "yyyy 'open"},
		{"HIEXT_MARKUP_STRONG_SIZE", "-1"},
		{"HIEXT_TEXT_TRUNCATE_LENGTH", "-4"},
		{"HIEXT_MARKUP_STRONG_COLOR", "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, _, err := run(t, "", "text", "trim", "x")
			if !hixerror.HasCode(err, hixerror.CodeConfigError) {
				t.Fatalf("error = %v; want CONFIG_ERROR", err)
			}
			var hixErr *hixerror.Error
			if !errors.As(err, &hixErr) {
				t.Fatalf("error type = %T", err)
			}
			if env, _ := hixErr.Detail("env"); env != tt.env {
				t.Errorf("env detail = %v; want %s", env, tt.env)
			}
		})
	}
}

func TestTruncateLengthSetting(t *testing.T) {
	got, _, err := run(t, "", "text", "truncate", "hello world, again")
	if err != nil || got != "hello worl...\n" {
		t.Errorf("truncate with default length = %q, %v", got, err)
	}

	t.Setenv("HIEXT_TEXT_TRUNCATE_LENGTH", "2")
	got, _, err = run(t, "", "text", "truncate", "hello")
	if err != nil || got != "he...\n" {
		t.Errorf("truncate with configured length = %q, %v", got, err)
	}

	got, _, err = run(t, "", "text", "truncate", "-n", "4", "hello")
	if err != nil || got != "hell...\n" {
		t.Errorf("flag should override the setting, got %q, %v", got, err)
	}
}

func TestNoColorLogging(t *testing.T) {
	t.Setenv("HIEXT_LOG_NO_COLOR", "true")
	_, stderr, err := run(t, "", "--log-level", "debug", "int", "times", "1")
	if err != nil {
		t.Fatalf("times error = %v", err)
	}
	if !strings.Contains(stderr, "iteration finished") {
		t.Errorf("stderr = %q; want debug log", stderr)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Errorf("stderr contains colour codes: %q", stderr)
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "int", "upto", "1", "2")
	if err != nil {
		t.Fatalf("upto error = %v", err)
	}
	if !strings.Contains(stderr, "iteration finished") {
		t.Errorf("stderr = %q; want debug log", stderr)
	}

	_, stderr, _ = run(t, "", "int", "upto", "1", "2")
	if strings.Contains(stderr, "iteration finished") {
		t.Errorf("debug log written at default level: %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	got, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(got, "hiext v") {
		t.Errorf("version = %q", got)
	}
}
