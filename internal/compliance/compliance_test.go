package compliance

import (
	"os"
	"testing"

	"github.com/jmespath-go/jmespath/pkg/jmespath"
)

func TestRunDirAllCasesPass(t *testing.T) {
	results, err := RunDir("testdata", jmespath.Create())
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}

	runID := results[0].RunID

	for _, r := range results {
		if r.RunID != runID {
			t.Fatalf("case %s: run ID %s does not match the run's tag %s", r.Expression, r.RunID, runID)
		}

		if !r.Passed {
			t.Errorf("case %q (suite %d, case %d): %s", r.Expression, r.SuiteIndex, r.CaseIndex, r.Message)
		}
	}
}

func TestRunDirReportsComparisonFailure(t *testing.T) {
	tmp := t.TempDir()

	writeFixture(t, tmp, `[{"given":{"a":1},"cases":[{"expression":"a","result":2}]}]`)

	results, err := RunDir(tmp, jmespath.Create())
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}

	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a single failing result, got %+v", results)
	}
}

func TestRunDirReportsUnexpectedErrorCategory(t *testing.T) {
	tmp := t.TempDir()

	writeFixture(t, tmp, `[{"given":{},"cases":[{"expression":"unknown(@)","error":"invalid-arity"}]}]`)

	results, err := RunDir(tmp, jmespath.Create())
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}

	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a single failing result, got %+v", results)
	}
}

func writeFixture(t *testing.T, dir, content string) {
	t.Helper()

	path := dir + "/fixture.json"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}
