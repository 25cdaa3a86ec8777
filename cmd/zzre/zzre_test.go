package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(file, []byte("abab\nabc\n\nAB\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile error = %v", err)
	}

	hiddenDir := filepath.Join(dir, "h")
	secret := filepath.Join(hiddenDir, ".secret")
	if err := os.MkdirAll(hiddenDir, 0o755); err != nil {
		t.Fatalf("os.MkdirAll error = %v", err)
	}
	if err := os.WriteFile(secret, []byte("ab\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile error = %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		wantStatus int
		wantOut    string
	}{
		{
			name:       "matches",
			args:       []string{"(ab)*", file},
			wantStatus: 0,
			wantOut:    `"` + file + `":1:abab` + "\n" + `"` + file + `":3:` + "\n" + `"` + file + `":4:AB` + "\n",
		},
		{
			name:       "dot literal",
			args:       []string{"-l", "ab.c", file},
			wantStatus: 0,
			wantOut:    "",
		},
		{
			name:       "hidden skipped",
			args:       []string{"ab", hiddenDir},
			wantStatus: 0,
			wantOut:    "",
		},
		{
			name:       "hidden searched",
			args:       []string{"--hidden", "ab", hiddenDir},
			wantStatus: 0,
			wantOut:    `"` + secret + `":1:ab` + "\n",
		},
		{
			name:       "invalid expression",
			args:       []string{"(ab", file},
			wantStatus: 2,
		},
		{
			name:       "unsupported escape",
			args:       []string{`\x`, file},
			wantStatus: 2,
		},
		{
			name:       "missing path",
			args:       []string{"ab"},
			wantStatus: 2,
		},
		{
			name:       "unknown flag",
			args:       []string{"--frobnicate", "ab", file},
			wantStatus: 2,
		},
		{
			name:       "bad jobs",
			args:       []string{"-j", "0", "ab", file},
			wantStatus: 2,
		},
		{
			name:       "missing file",
			args:       []string{"ab", filepath.Join(dir, "nope")},
			wantStatus: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := run(context.Background(), test.args, &stdout, &stderr)
			if status != test.wantStatus {
				t.Errorf("run(%q) = %d, want %d (stderr: %s)", test.args, status, test.wantStatus, stderr.String())
			}
			if diff := cmp.Diff(stdout.String(), test.wantOut); diff != "" {
				t.Errorf("run(%q) stdout diff (-got +want):\n%s", test.args, diff)
			}
		})
	}
}
