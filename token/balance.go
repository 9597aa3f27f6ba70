package token

// CheckBalance returns an *ImbalanceError if toks is not well-formed: every
// end element must close the innermost open start element with the same
// name and namespace, and no element may remain open.
func CheckBalance(toks []*Token) error {
	var stack []*Token
	for i, t := range toks {
		switch t.kind {
		case KindStartElement:
			stack = append(stack, t)
		case KindEndElement:
			n := len(stack)
			if n == 0 {
				return &ImbalanceError{Close: t, Index: i}
			}
			open := stack[n-1]
			if open.name != t.name || open.ns != t.ns {
				return &ImbalanceError{Open: open, Close: t, Index: i}
			}
			stack = stack[:n-1]
		}
	}
	if n := len(stack); n != 0 {
		return &ImbalanceError{Open: stack[n-1], Index: len(toks)}
	}
	return nil
}
