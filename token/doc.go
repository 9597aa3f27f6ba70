// Package token provides the markup token model used by diffx.
//
// A [Token] is an immutable value describing one markup event: the start or
// end of an element, an attribute, a run of text or white space, a comment,
// a processing instruction, or a document boundary. Every token carries a
// precomputed hash so that [Token.Equal] can reject most candidates with a
// single integer comparison, which matters because the alignment algorithms
// compare tokens millions of times.
//
// Tokens are normally created by loaders through a [Factory], which interns
// frequently repeated values. Interning never changes equality.
//
// [CheckBalance] verifies that a token list is well-formed and [Token.WriteTo]
// renders a token through a [Writer].
package token
