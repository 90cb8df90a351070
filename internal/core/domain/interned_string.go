package domain

import "unique"

// InternedString wraps a unique.Handle[string]. Task identifiers show up many
// times over in the host runner's tables (as task keys and again in every
// dependent's dependency list), so interning keeps comparisons cheap and
// memory flat.
type InternedString struct {
	h unique.Handle[string]
}

// Intern interns s and returns its handle.
func Intern(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value. The zero value yields "".
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// InternAll interns a slice of strings.
func InternAll(strs []string) []InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]InternedString, len(strs))
	for i, s := range strs {
		res[i] = Intern(s)
	}
	return res
}
