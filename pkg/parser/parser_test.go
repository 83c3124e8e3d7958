package parser

import (
	"testing"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/pkg/lexer"
)

func mustParse(t *testing.T, input string) ast.Node {
	t.Helper()

	p := New(lexer.New(input))

	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}

	return node
}

func testIdentifier(t *testing.T, n ast.Node, name string) bool {
	t.Helper()

	id, ok := n.(*ast.Identifier)
	if !ok {
		t.Errorf("n not *ast.Identifier. got=%T", n)
		return false
	}

	if id.Name != name {
		t.Errorf("id.Name not %q. got=%q", name, id.Name)
		return false
	}

	return true
}

func TestIdentifierExpression(t *testing.T) {
	n := mustParse(t, "foobar")

	testIdentifier(t, n, "foobar")
}

func TestQuotedIdentifierRetainsQuotes(t *testing.T) {
	n := mustParse(t, `"foo bar"`)

	id, ok := n.(*ast.QuotedIdentifier)
	if !ok {
		t.Fatalf("n not *ast.QuotedIdentifier. got=%T", n)
	}

	if id.Raw != `"foo bar"` {
		t.Errorf("id.Raw not %q. got=%q", `"foo bar"`, id.Raw)
	}
}

func TestSubExpression(t *testing.T) {
	n := mustParse(t, "foo.bar")

	sub, ok := n.(*ast.SubExpression)
	if !ok {
		t.Fatalf("n not *ast.SubExpression. got=%T", n)
	}

	testIdentifier(t, sub.LHS, "foo")
	testIdentifier(t, sub.RHS, "bar")
}

func TestSubExpressionChain(t *testing.T) {
	n := mustParse(t, "foo.bar.baz")

	outer, ok := n.(*ast.SubExpression)
	if !ok {
		t.Fatalf("n not *ast.SubExpression. got=%T", n)
	}

	inner, ok := outer.LHS.(*ast.SubExpression)
	if !ok {
		t.Fatalf("outer.LHS not *ast.SubExpression. got=%T", outer.LHS)
	}

	testIdentifier(t, inner.LHS, "foo")
	testIdentifier(t, inner.RHS, "bar")
	testIdentifier(t, outer.RHS, "baz")
}

func TestIndexExpression(t *testing.T) {
	n := mustParse(t, "foo[0]")

	idx, ok := n.(*ast.Index)
	if !ok {
		t.Fatalf("n not *ast.Index. got=%T", n)
	}

	testIdentifier(t, idx.Left, "foo")

	if idx.Value != 0 {
		t.Errorf("idx.Value not 0. got=%d", idx.Value)
	}
}

func TestBareIndexNeedsNoDot(t *testing.T) {
	n := mustParse(t, "foo[0]")
	if _, ok := n.(*ast.Index); !ok {
		t.Fatalf("n not *ast.Index. got=%T", n)
	}
}

func TestSliceExpression(t *testing.T) {
	tests := []struct {
		input              string
		start, stop, step  *int64
	}{
		{"foo[1:2]", i64p(1), i64p(2), nil},
		{"foo[:2]", nil, i64p(2), nil},
		{"foo[1:]", i64p(1), nil, nil},
		{"foo[:]", nil, nil, nil},
		{"foo[::2]", nil, nil, i64p(2)},
	}

	for _, tt := range tests {
		n := mustParse(t, tt.input)

		proj, ok := n.(*ast.Projection)
		if !ok {
			t.Fatalf("%s: n not *ast.Projection. got=%T", tt.input, n)
		}

		if proj.Kind != ast.ProjSlice {
			t.Fatalf("%s: proj.Kind not ProjSlice. got=%v", tt.input, proj.Kind)
		}

		assertBoundEqual(t, tt.input, "start", proj.Start, tt.start)
		assertBoundEqual(t, tt.input, "stop", proj.Stop, tt.stop)
		assertBoundEqual(t, tt.input, "step", proj.Step, tt.step)
	}
}

func assertBoundEqual(t *testing.T, input, label string, got, want *int64) {
	t.Helper()

	switch {
	case got == nil && want == nil:
		return
	case got == nil || want == nil:
		t.Errorf("%s: %s bound mismatch. got=%v want=%v", input, label, got, want)
	case *got != *want:
		t.Errorf("%s: %s bound mismatch. got=%d want=%d", input, label, *got, *want)
	}
}

func i64p(v int64) *int64 { return &v }

func TestWildcardProjection(t *testing.T) {
	n := mustParse(t, "foo[*].bar")

	proj, ok := n.(*ast.Projection)
	if !ok {
		t.Fatalf("n not *ast.Projection. got=%T", n)
	}

	if proj.Kind != ast.ProjListWildcard {
		t.Fatalf("proj.Kind not ProjListWildcard. got=%v", proj.Kind)
	}

	testIdentifier(t, proj.Left, "foo")
	testIdentifier(t, proj.Right, "bar")
}

func TestFlattenProjection(t *testing.T) {
	n := mustParse(t, "foo[].bar")

	proj, ok := n.(*ast.Projection)
	if !ok {
		t.Fatalf("n not *ast.Projection. got=%T", n)
	}

	if proj.Kind != ast.ProjFlatten {
		t.Fatalf("proj.Kind not ProjFlatten. got=%v", proj.Kind)
	}

	testIdentifier(t, proj.Right, "bar")
}

func TestFilterProjection(t *testing.T) {
	n := mustParse(t, "foo[?bar == `1`].baz")

	proj, ok := n.(*ast.Projection)
	if !ok {
		t.Fatalf("n not *ast.Projection. got=%T", n)
	}

	if proj.Kind != ast.ProjFilter {
		t.Fatalf("proj.Kind not ProjFilter. got=%v", proj.Kind)
	}

	if _, ok := proj.Predicate.(*ast.Comparator); !ok {
		t.Fatalf("proj.Predicate not *ast.Comparator. got=%T", proj.Predicate)
	}

	testIdentifier(t, proj.Right, "baz")
}

func TestChainedProjectionFoldsIntoRight(t *testing.T) {
	// Per the canonicalization rule, a dotted continuation after an open
	// projection folds into that projection's Right slot instead of
	// wrapping the whole projection in a SubExpression.
	n := mustParse(t, "foo[*].bar.baz")

	proj, ok := n.(*ast.Projection)
	if !ok {
		t.Fatalf("n not *ast.Projection. got=%T", n)
	}

	right, ok := proj.Right.(*ast.SubExpression)
	if !ok {
		t.Fatalf("proj.Right not *ast.SubExpression. got=%T", proj.Right)
	}

	testIdentifier(t, right.LHS, "bar")
	testIdentifier(t, right.RHS, "baz")
}

func TestHashWildcardProjection(t *testing.T) {
	n := mustParse(t, "foo.*.bar")

	proj, ok := n.(*ast.HashWildcardProjection)
	if !ok {
		t.Fatalf("n not *ast.HashWildcardProjection. got=%T", n)
	}

	testIdentifier(t, proj.Left, "foo")
	testIdentifier(t, proj.Right, "bar")
}

func TestMultiSelectListRequiresDot(t *testing.T) {
	n := mustParse(t, "foo.[a, b]")

	sub, ok := n.(*ast.SubExpression)
	if !ok {
		t.Fatalf("n not *ast.SubExpression. got=%T", n)
	}

	msl, ok := sub.RHS.(*ast.MultiSelectList)
	if !ok {
		t.Fatalf("sub.RHS not *ast.MultiSelectList. got=%T", sub.RHS)
	}

	if len(msl.Items) != 2 {
		t.Fatalf("len(msl.Items) not 2. got=%d", len(msl.Items))
	}
}

func TestMultiSelectListAsPrimary(t *testing.T) {
	n := mustParse(t, "[a, b, c]")

	msl, ok := n.(*ast.MultiSelectList)
	if !ok {
		t.Fatalf("n not *ast.MultiSelectList. got=%T", n)
	}

	if len(msl.Items) != 3 {
		t.Fatalf("len(msl.Items) not 3. got=%d", len(msl.Items))
	}
}

func TestMultiSelectHash(t *testing.T) {
	n := mustParse(t, `{a: foo, "b c": bar}`)

	msh, ok := n.(*ast.MultiSelectHash)
	if !ok {
		t.Fatalf("n not *ast.MultiSelectHash. got=%T", n)
	}

	if len(msh.Pairs) != 2 {
		t.Fatalf("len(msh.Pairs) not 2. got=%d", len(msh.Pairs))
	}

	if msh.Pairs[0].Key != "a" || msh.Pairs[0].Quoted {
		t.Errorf("unexpected first pair: %+v", msh.Pairs[0])
	}

	if msh.Pairs[1].Key != "b c" || !msh.Pairs[1].Quoted {
		t.Errorf("unexpected second pair (quoted key should decode at parse time): %+v", msh.Pairs[1])
	}
}

func TestFunctionCallParsing(t *testing.T) {
	n := mustParse(t, "length(foo)")

	call, ok := n.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("n not *ast.FunctionCall. got=%T", n)
	}

	if call.Name != "length" {
		t.Errorf("call.Name not %q. got=%q", "length", call.Name)
	}

	if len(call.Args) != 1 {
		t.Fatalf("len(call.Args) not 1. got=%d", len(call.Args))
	}

	testIdentifier(t, call.Args[0], "foo")
}

func TestFunctionCallNoArgs(t *testing.T) {
	n := mustParse(t, "current()")

	call, ok := n.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("n not *ast.FunctionCall. got=%T", n)
	}

	if len(call.Args) != 0 {
		t.Fatalf("len(call.Args) not 0. got=%d", len(call.Args))
	}
}

func TestExpressionRefArgument(t *testing.T) {
	n := mustParse(t, "sort_by(@, &foo)")

	call, ok := n.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("n not *ast.FunctionCall. got=%T", n)
	}

	if len(call.Args) != 2 {
		t.Fatalf("len(call.Args) not 2. got=%d", len(call.Args))
	}

	ref, ok := call.Args[1].(*ast.ExpressionRef)
	if !ok {
		t.Fatalf("call.Args[1] not *ast.ExpressionRef. got=%T", call.Args[1])
	}

	testIdentifier(t, ref.Inner, "foo")
}

func TestPipeExpression(t *testing.T) {
	n := mustParse(t, "foo[*] | [0]")

	pipe, ok := n.(*ast.Pipe)
	if !ok {
		t.Fatalf("n not *ast.Pipe. got=%T", n)
	}

	if _, ok := pipe.LHS.(*ast.Projection); !ok {
		t.Fatalf("pipe.LHS not *ast.Projection. got=%T", pipe.LHS)
	}

	if _, ok := pipe.RHS.(*ast.Index); !ok {
		t.Fatalf("pipe.RHS not *ast.Index. got=%T", pipe.RHS)
	}
}

func TestComparatorExpression(t *testing.T) {
	n := mustParse(t, "foo == bar")

	cmp, ok := n.(*ast.Comparator)
	if !ok {
		t.Fatalf("n not *ast.Comparator. got=%T", n)
	}

	if cmp.Op != ast.CompareEqual {
		t.Errorf("cmp.Op not CompareEqual. got=%v", cmp.Op)
	}

	testIdentifier(t, cmp.LHS, "foo")
	testIdentifier(t, cmp.RHS, "bar")
}

func TestLogicalExpressions(t *testing.T) {
	n := mustParse(t, "foo && bar || baz")

	or, ok := n.(*ast.Logical)
	if !ok || or.Op != ast.LogicalOr {
		t.Fatalf("n not a top-level LogicalOr. got=%T", n)
	}

	and, ok := or.LHS.(*ast.Logical)
	if !ok || and.Op != ast.LogicalAnd {
		t.Fatalf("or.LHS not a LogicalAnd. got=%T", or.LHS)
	}
}

func TestUnaryNot(t *testing.T) {
	n := mustParse(t, "!foo")

	logical, ok := n.(*ast.Logical)
	if !ok {
		t.Fatalf("n not *ast.Logical. got=%T", n)
	}

	if logical.Op != ast.LogicalNot {
		t.Fatalf("logical.Op not LogicalNot. got=%v", logical.Op)
	}

	testIdentifier(t, logical.RHS, "foo")
}

func TestLetExpression(t *testing.T) {
	n := mustParse(t, "let $x = foo, $y = bar in $x")

	let, ok := n.(*ast.Let)
	if !ok {
		t.Fatalf("n not *ast.Let. got=%T", n)
	}

	if len(let.Bindings) != 2 {
		t.Fatalf("len(let.Bindings) not 2. got=%d", len(let.Bindings))
	}

	if let.Bindings[0].Var != "x" {
		t.Errorf("let.Bindings[0].Var not %q. got=%q", "x", let.Bindings[0].Var)
	}

	testIdentifier(t, let.Bindings[0].Value, "foo")

	if let.Bindings[1].Var != "y" {
		t.Errorf("let.Bindings[1].Var not %q. got=%q", "y", let.Bindings[1].Var)
	}

	ref, ok := let.Body.(*ast.VariableRef)
	if !ok {
		t.Fatalf("let.Body not *ast.VariableRef. got=%T", let.Body)
	}

	if ref.Name != "x" {
		t.Errorf("ref.Name not %q. got=%q", "x", ref.Name)
	}
}

func TestLetBodyReceivesTrailingProjection(t *testing.T) {
	n := mustParse(t, "let $x = foo in $x[*].bar")

	let, ok := n.(*ast.Let)
	if !ok {
		t.Fatalf("n not *ast.Let. got=%T", n)
	}

	if _, ok := let.Body.(*ast.Projection); !ok {
		t.Fatalf("let.Body not *ast.Projection. got=%T", let.Body)
	}
}

func TestParenExpression(t *testing.T) {
	n := mustParse(t, "(foo)")

	paren, ok := n.(*ast.Paren)
	if !ok {
		t.Fatalf("n not *ast.Paren. got=%T", n)
	}

	testIdentifier(t, paren.Inner, "foo")
}

func TestRawStringLiteral(t *testing.T) {
	n := mustParse(t, `'foo\'bar'`)

	lit, ok := n.(*ast.RawStringLiteral)
	if !ok {
		t.Fatalf("n not *ast.RawStringLiteral. got=%T", n)
	}

	if lit.Value != `foo'bar` {
		t.Errorf("lit.Value not %q. got=%q", `foo'bar`, lit.Value)
	}
}

func TestCurrentAndRoot(t *testing.T) {
	if _, ok := mustParse(t, "@").(*ast.Current); !ok {
		t.Errorf("@ did not parse to *ast.Current")
	}

	if _, ok := mustParse(t, "$").(*ast.Root); !ok {
		t.Errorf("$ did not parse to *ast.Root")
	}
}

func TestParseErrorReturnsFirst(t *testing.T) {
	p := New(lexer.New("foo.."))

	if _, err := p.Parse(); err == nil {
		t.Fatalf("expected a parse error for %q", "foo..")
	}
}
