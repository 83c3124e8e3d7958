package main

import (
	"bytes"
	"os"
	"testing"
)

func TestRunComplianceAllPass(t *testing.T) {
	tmp := t.TempDir()

	if err := os.WriteFile(tmp+"/fixture.json", []byte(`[{"given":{"a":1},"cases":[{"expression":"a","result":1}]}]`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	root := newRootCommand()

	var stdout bytes.Buffer

	root.SetOut(&stdout)
	root.SetArgs([]string{tmp})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestRunComplianceReportsFailure(t *testing.T) {
	tmp := t.TempDir()

	if err := os.WriteFile(tmp+"/fixture.json", []byte(`[{"given":{"a":1},"cases":[{"expression":"a","result":2}]}]`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	root := newRootCommand()

	var stdout bytes.Buffer

	root.SetOut(&stdout)
	root.SetArgs([]string{tmp})

	if err := root.Execute(); err == nil {
		t.Fatal("expected a nonzero-exit error for a failing compliance case")
	}

	if stdout.Len() == 0 {
		t.Fatal("expected failure detail on stdout")
	}
}
