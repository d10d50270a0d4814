package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/config"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeConfig writes a widgets.toml into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := rootCmd()
	want := map[string]bool{"clock": false, "joke": false, "init": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent --config flag")
	}
}

func TestSubcommandFlags(t *testing.T) {
	tests := []struct {
		cmd   string
		flags []string
	}{
		{"clock", []string{"12h", "no-tui"}},
		{"joke", []string{"no-tui"}},
	}
	root := rootCmd()
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			cmd, _, err := root.Find([]string{tt.cmd})
			if err != nil {
				t.Fatal(err)
			}
			for _, f := range tt.flags {
				if cmd.Flags().Lookup(f) == nil {
					t.Errorf("%s: missing --%s", tt.cmd, f)
				}
			}
		})
	}
}

func TestClockCmd_NoTUI(t *testing.T) {
	timeRe := regexp.MustCompile(`^(\d{2}):\d{2}:\d{2}\n$`)
	tests := []struct {
		name    string
		config  string
		args    []string
		maxHour int
	}{
		{"config default 24h", "", nil, 23},
		{"flag forces 12h", "", []string{"--12h"}, 12},
		{"config 12h", "[clock]\nuse_24_hour = false\n", nil, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.config)
			args := append([]string{"clock", "--no-tui", "--config", path}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			m := timeRe.FindStringSubmatch(out)
			if m == nil {
				t.Fatalf("output %q is not HH:MM:SS", out)
			}
			var hour int
			fmt.Sscanf(m[1], "%d", &hour)
			if hour > tt.maxHour || (tt.maxHour == 12 && hour == 0) {
				t.Errorf("hour %d out of range for max %d", hour, tt.maxHour)
			}
		})
	}
}

func TestJokeCmd_NoTUI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"type":"general","setup":"Knock knock","punchline":"Who's there?"}`)
	}))
	defer srv.Close()

	path := writeConfig(t, fmt.Sprintf("[joke]\nendpoint = %q\n", srv.URL))
	out, err := execute(t, "joke", "--no-tui", "--config", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "Knock knock - Who's there?\n" {
		t.Errorf("output = %q", out)
	}
}

func TestJokeCmd_NoTUI_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	path := writeConfig(t, fmt.Sprintf("[joke]\nendpoint = %q\n", srv.URL))
	out, err := execute(t, "joke", "--no-tui", "--config", path)
	if err == nil {
		t.Fatal("expected an error for a failed fetch")
	}
	if !strings.Contains(out, "Failed to fetch joke. Please try again.") {
		t.Errorf("output should contain the failure message; got %q", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "[joke]\ntimeout_seconds = -1\n")
	if _, err := execute(t, "clock", "--no-tui", "--config", path); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	want := filepath.Join(dir, config.FileName)
	if !strings.Contains(out, "Created") {
		t.Errorf("output = %q, want Created message", out)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected %s to exist: %v", want, err)
	}

	if _, err := execute(t, "init"); err == nil {
		t.Error("second init should fail because the file exists")
	}
}
