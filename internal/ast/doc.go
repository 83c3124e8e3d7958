// Package ast provides Abstract Syntax Tree (AST) node definitions for the
// JMESPath expression language.
//
// Every node type implements the Node interface. Nodes are not modified
// after parsing; an expression-reference value points at the same subtree
// the parser built rather than at a copy.
//
// Node Categories:
//
// Leaves:
//   - Current, Root: `@` and `$`
//   - Identifier, QuotedIdentifier: field-name references
//   - RawStringLiteral, JSONLiteral, NumberLiteral: literals
//   - VariableRef: `$name`
//
// Compounds:
//   - SubExpression, Pipe: `.` and `|`
//   - Index, Projection (including slices), HashWildcardProjection
//   - MultiSelectList, MultiSelectHash
//   - FunctionCall, ExpressionRef (`&expr`)
//   - Let, Arithmetic, Comparator, Logical (including unary `!`), Paren
//
// All nodes carry a Position for error reporting; a zero Position
// ((0,0)) denotes "unknown" per the engine's position model.
package ast
