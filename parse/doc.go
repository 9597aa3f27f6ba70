// Package parse loads documents into token sequences.
//
// # Usage
//
//	seq, err := parse.XML(r)
//
//	// Compare words, ignoring white space differences
//	seq, err = parse.XML(r,
//	    parse.WithGranularity(parse.GranularityWord),
//	    parse.WithWhitespace(parse.WhitespacePreserve))
//
//	// HTML and plain text
//	seq, err = parse.HTML(r)
//	seq, err = parse.Lines(r)
//
// Character content is split into tokens by a [Tokenizer] according to a
// [Granularity]; white space handling follows a [Whitespace] setting.
//
// # Related Packages
//
//   - github.com/signadot/diffx/sequence - token sequences
//   - github.com/signadot/diffx/token - the token model
package parse
