// Package parser implements a graph-driven recursive-descent parser:
// every grammar rule is a small table of Edge values threaded by
// next/alt indices, walked by a single generic engine with one level
// of backtracking. Semantic actions attached to edges drive the
// symbol table and bytecode emitter directly during the single parse
// pass — there is no intermediate AST.
package parser
