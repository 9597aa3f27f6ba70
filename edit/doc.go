// Package edit defines the edit operators and the [Handler] protocol which
// connects the alignment algorithms to their consumers.
//
// An edit script is delivered one (Operator, Token) pair at a time, in
// output order. Tokens tagged [Match] or [Del] replay the source sequence;
// tokens tagged [Match] or [Ins] replay the target sequence.
//
// Besides the protocol, the package provides small handlers which are useful
// on their own or chained in front of a formatter: [Script] records a
// script, [Mux] fans out, [Coalescer] merges text runs, [BalanceChecker]
// verifies element pairing and [Stats] counts.
package edit
