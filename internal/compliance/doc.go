// Package compliance implements a portable compliance-test harness: it
// walks a directory of JSON fixture files, each holding an array of suites
// (a `given` root value and a list of `{expression, result?, error?}`
// cases), evaluates every case through a jmespath.Runtime, and reports
// pass/fail by structural equality (for an expected result) or
// error-category slug (for an expected error).
//
// Grounded in a table-driven test style generalized to a data file, in the
// directory-of-fixtures-plus-one-walker shape common to compliance suites
// for declarative query languages, and tagged with a run-scoped
// github.com/google/uuid so CI output is joinable across reruns.
package compliance
