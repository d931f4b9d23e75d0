package signing

import (
	"context"
	"io"
	"sync"
)

// Signer produces a detached signature over message, using the key and
// program selection carried by cfg. Implementations live outside this
// package; commit and tag builders pick one via SignerFor.
type Signer interface {
	Sign(ctx context.Context, cfg *Config, message io.Reader) ([]byte, error)
}

var (
	signersMu sync.RWMutex
	signers   = make(map[Format]Signer)
)

// RegisterSigner installs s as the signer for format f, replacing any
// previous registration for that format.
func RegisterSigner(f Format, s Signer) {
	signersMu.Lock()
	defer signersMu.Unlock()
	signers[f] = s
}

// SignerFor returns the signer registered for format f. Callers seeing
// ok == false should surface errclass.ErrFormatUnsupported.
func SignerFor(f Format) (Signer, bool) {
	signersMu.RLock()
	defer signersMu.RUnlock()
	s, ok := signers[f]
	return s, ok
}
