// Package encode renders edit scripts.
//
// # Usage
//
//	// Annotated XML: both documents in one tree
//	r := encode.NewReconciler(w, encode.EncodeNamespaces(ns))
//	err := libdiff.Diff(src, dst, r)
//	if err == nil {
//	    err = r.Close()
//	}
//
//	// One line per entry, coloured
//	sw := encode.NewScriptWriter(w, encode.EncodeColors(encode.NewColors()))
//
// The [Reconciler] marks inserted and deleted elements with dfx:insert and
// dfx:delete attributes, wraps inserted and deleted text in dfx:ins and
// dfx:del elements, and records attribute changes with the ins: and del:
// namespaces. Its output is well-formed whenever the script is balanced.
//
// # Related Packages
//
//   - github.com/signadot/diffx/edit - operators and handlers
//   - github.com/signadot/diffx/libdiff - computes edit scripts
package encode
