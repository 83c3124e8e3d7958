package compliance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/eval"
	"github.com/jmespath-go/jmespath/pkg/jmespath"
)

// Result records the outcome of a single compliance case.
type Result struct {
	RunID      uuid.UUID
	File       string
	SuiteIndex int
	CaseIndex  int
	Expression string
	Passed     bool
	Message    string
}

type suiteFile struct {
	Given json.RawMessage `json:"given"`
	Cases []caseFile      `json:"cases"`
}

type caseFile struct {
	Expression string          `json:"expression"`
	Result     json.RawMessage `json:"result,omitempty"`
	Error      *string         `json:"error,omitempty"`
}

// RunDir walks dir for *.json fixture files, evaluates every case in every
// suite against rt, and returns one Result per case. Every Result in the
// returned slice shares the same run-scoped UUID; each invocation draws a
// new one, so results combined from several invocations can be grouped by
// run.
func RunDir(dir string, rt *jmespath.Runtime) ([]Result, error) {
	files, err := collectJSONFiles(dir)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()

	var results []Result

	for _, f := range files {
		fileResults, err := runFile(runID, f, rt)
		if err != nil {
			return nil, fmt.Errorf("compliance: %s: %w", f, err)
		}

		results = append(results, fileResults...)
	}

	return results, nil
}

func collectJSONFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if filepath.Ext(path) == ".json" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	return files, nil
}

func runFile(runID uuid.UUID, path string, rt *jmespath.Runtime) ([]Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suites []suiteFile
	if err := json.Unmarshal(raw, &suites); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}

	var results []Result

	for si, suite := range suites {
		given, err := eval.DecodeJSON(bytes.NewReader(suite.Given))
		if err != nil {
			return nil, fmt.Errorf("suite %d: decoding given: %w", si, err)
		}

		for ci, c := range suite.Cases {
			results = append(results, runCase(runID, path, si, ci, given, c, rt))
		}
	}

	return results, nil
}

func runCase(runID uuid.UUID, file string, si, ci int, given value.Value, c caseFile, rt *jmespath.Runtime) Result {
	base := Result{RunID: runID, File: file, SuiteIndex: si, CaseIndex: ci, Expression: c.Expression}

	got, evalErr := rt.Search(c.Expression, given)

	if c.Error != nil {
		return checkExpectedError(base, *c.Error, evalErr)
	}

	if evalErr != nil {
		base.Message = fmt.Sprintf("unexpected error: %v", evalErr)
		return base
	}

	if c.Result != nil {
		want, err := eval.DecodeJSON(bytes.NewReader(c.Result))
		if err != nil {
			base.Message = fmt.Sprintf("decoding expected result: %v", err)
			return base
		}

		if !value.Equal(got, want) {
			base.Message = fmt.Sprintf("got %s, want %s", value.MarshalJSON(got), value.MarshalJSON(want))
			return base
		}
	}

	base.Passed = true

	return base
}

func checkExpectedError(base Result, wantSlug string, got error) Result {
	if got == nil {
		base.Message = fmt.Sprintf("expected error category %q, evaluation succeeded", wantSlug)
		return base
	}

	je, ok := got.(jmerr.Error)
	if !ok {
		base.Message = fmt.Sprintf("expected error category %q, got non-jmerr error: %v", wantSlug, got)
		return base
	}

	if je.Kind.String() != wantSlug {
		base.Message = fmt.Sprintf("expected error category %q, got %q", wantSlug, je.Kind.String())
		return base
	}

	base.Passed = true

	return base
}
