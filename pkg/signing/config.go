package signing

import "github.com/sepatel/jgit/pkg/gitcfg"

// optional holds a string value that may be absent. A value explicitly set
// to "" is present, matching the store's notion of a set key.
type optional struct {
	value string
	ok    bool
}

// Config is an immutable snapshot of the signing-related configuration.
// Every option is resolved once at construction; the snapshot keeps no
// reference to the store, so later store mutation is never observed and
// unsynchronized concurrent reads are safe.
type Config struct {
	keyFormat             Format
	signingKey            optional
	program               optional
	signCommits           bool
	signAllTags           bool
	forceAnnotated        bool
	sshDefaultKeyCommand  optional
	sshAllowedSignersFile optional
	sshRevocationFile     optional
}

// NewConfig resolves the signing configuration from st. Absent or
// unrecognized values silently fall back to their documented defaults; a
// typo'd gpg.format behaves exactly like an unset one.
func NewConfig(st gitcfg.Store) *Config {
	keyFormat := gitcfg.GetEnum(st, Formats(), "gpg", "", "format", FormatOpenPGP)

	// gpg.<format>.program shadows the legacy unscoped gpg.program, which
	// historically implied OpenPGP. Only the OpenPGP format consults the
	// legacy key at all.
	program := lookup(st, "gpg", keyFormat.ConfigValue(), "program")
	if !program.ok && keyFormat == FormatOpenPGP {
		program = lookup(st, "gpg", "", "program")
	}

	return &Config{
		keyFormat:             keyFormat,
		signingKey:            lookup(st, "user", "", "signingKey"),
		program:               program,
		signCommits:           gitcfg.Bool(st, "commit", "gpgSign", false),
		signAllTags:           gitcfg.Bool(st, "tag", "gpgSign", false),
		forceAnnotated:        gitcfg.Bool(st, "tag", "forceSignAnnotated", false),
		sshDefaultKeyCommand:  lookup(st, "gpg", "ssh", "defaultKeyCommand"),
		sshAllowedSignersFile: lookup(st, "gpg", "ssh", "allowedSignersFile"),
		sshRevocationFile:     lookup(st, "gpg", "ssh", "revocationFile"),
	}
}

func lookup(st gitcfg.Store, section, subsection, name string) optional {
	v, ok := gitcfg.String(st, section, subsection, name)
	return optional{value: v, ok: ok}
}

// KeyFormat returns the resolved gpg.format, defaulting to FormatOpenPGP.
func (c *Config) KeyFormat() Format {
	return c.keyFormat
}

// SigningKey returns the value of user.signingKey, if set.
func (c *Config) SigningKey() (string, bool) {
	return c.signingKey.value, c.signingKey.ok
}

// Program returns the signing program to invoke, as resolved from
// gpg.<format>.program or, for OpenPGP only, the legacy gpg.program.
func (c *Config) Program() (string, bool) {
	return c.program.value, c.program.ok
}

// SignCommits returns the value of commit.gpgSign, defaulting to false.
func (c *Config) SignCommits() bool {
	return c.signCommits
}

// SignAllTags returns the value of tag.gpgSign, defaulting to false.
func (c *Config) SignAllTags() bool {
	return c.signAllTags
}

// SignAnnotated returns the value of tag.forceSignAnnotated, defaulting to
// false.
func (c *Config) SignAnnotated() bool {
	return c.forceAnnotated
}

// SSHDefaultKeyCommand returns the value of gpg.ssh.defaultKeyCommand, if set.
func (c *Config) SSHDefaultKeyCommand() (string, bool) {
	return c.sshDefaultKeyCommand.value, c.sshDefaultKeyCommand.ok
}

// SSHAllowedSignersFile returns the value of gpg.ssh.allowedSignersFile, if set.
func (c *Config) SSHAllowedSignersFile() (string, bool) {
	return c.sshAllowedSignersFile.value, c.sshAllowedSignersFile.ok
}

// SSHRevocationFile returns the value of gpg.ssh.revocationFile, if set.
func (c *Config) SSHRevocationFile() (string, bool) {
	return c.sshRevocationFile.value, c.sshRevocationFile.ok
}
