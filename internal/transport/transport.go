// Package transport defines the seam between this module's core
// components and the editor wire protocol: an external collaborator,
// specified only by the interface the core consumes. Request/response
// framing, JSON-RPC encoding, and the LSP method dispatch table all live
// outside this module; Serve is the single entry point cmd/robustls
// hands control to.
package transport

import "io"

// Transport drives the editor protocol loop against in/out until the
// client disconnects. A real implementation decodes
// Content-Length-framed JSON-RPC from in, dispatches to the Symbol Index,
// Edit Router and Query Engine, and encodes responses to out; this module
// supplies only the core those handlers would call.
type Transport interface {
	Serve(in io.Reader, out io.Writer) error
}

// Stdio is the zero-value Transport used when no other implementation is
// injected: it blocks until in reaches EOF, acknowledging that real
// protocol framing is out of scope here.
type Stdio struct{}

// Serve reads in to EOF and returns nil, the placeholder shape of "run
// until the client disconnects" without any actual protocol handling.
func (Stdio) Serve(in io.Reader, out io.Writer) error {
	_, err := io.Copy(io.Discard, in)
	return err
}
