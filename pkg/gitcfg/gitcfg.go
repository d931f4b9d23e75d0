// Package gitcfg provides read access to git-style hierarchical
// configuration, where values are addressed by section, optional
// subsection, and name.
package gitcfg

import "strings"

// Store is a read-only view of a hierarchical configuration source.
type Store interface {
	// Lookup returns the raw value stored under the given address.
	// subsection may be empty to address an unscoped key (e.g. gpg.program
	// rather than gpg.openpgp.program). ok reports whether the key is set;
	// a key explicitly set to the empty string is still set.
	Lookup(section, subsection, name string) (value string, ok bool)
}

// EnumValue is implemented by members of a closed set of recognized
// configuration tokens.
type EnumValue interface {
	// MatchValue reports whether raw is exactly this variant's token.
	MatchValue(raw string) bool
	// ConfigValue returns the canonical token as written to config files.
	ConfigValue() string
}

// String returns the value stored under the given address, reporting
// whether the key is set.
func String(st Store, section, subsection, name string) (string, bool) {
	return st.Lookup(section, subsection, name)
}

// Bool returns the boolean value stored under section.name, following
// git's value grammar: true/yes/on/1 are true, false/no/off/0 are false,
// case-insensitively; a key set without a value means true. Absent or
// unparseable values yield def.
func Bool(st Store, section, name string, def bool) bool {
	raw, ok := st.Lookup(section, "", name)
	if !ok {
		return def
	}
	v, ok := parseBool(raw)
	if !ok {
		return def
	}
	return v
}

// GetEnum returns the variant whose canonical token exactly matches the
// value stored under the given address. Absent or unmatched values yield
// def; an unrecognized token is not an error.
func GetEnum[E EnumValue](st Store, variants []E, section, subsection, name string, def E) E {
	raw, ok := st.Lookup(section, subsection, name)
	if !ok {
		return def
	}
	for _, v := range variants {
		if v.MatchValue(raw) {
			return v
		}
	}
	return def
}

func parseBool(raw string) (value, ok bool) {
	switch strings.ToLower(raw) {
	case "", "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// addr builds the canonical lookup key. Git treats section and variable
// names case-insensitively but subsection names case-sensitively.
func addr(section, subsection, name string) string {
	return strings.ToLower(section) + "\x00" + subsection + "\x00" + strings.ToLower(name)
}
