// Package signing provides typed, immutable access to the signing-related
// git configuration options (gpg.*, user.signingKey, commit.gpgSign,
// tag.gpgSign and friends).
package signing

// Format identifies the signing scheme configured under gpg.format.
type Format string

const (
	// FormatOpenPGP signs with OpenPGP keys. This is git's default.
	FormatOpenPGP Format = "openpgp"
	// FormatX509 signs with X.509 certificates (e.g. via gpgsm).
	FormatX509 Format = "x509"
	// FormatSSH signs with SSH keys.
	FormatSSH Format = "ssh"
)

// Formats returns the closed set of recognized signing formats.
func Formats() []Format {
	return []Format{FormatOpenPGP, FormatX509, FormatSSH}
}

// ConfigValue returns the canonical token for the format as written to
// config files.
func (f Format) ConfigValue() string {
	return string(f)
}

// MatchValue reports whether raw is exactly the format's canonical token.
// Matching is case-sensitive; resolving an unmatched token is the caller's
// concern, not an error here.
func (f Format) MatchValue(raw string) bool {
	return string(f) == raw
}
