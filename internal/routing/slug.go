package routing

import "strings"

// Normalize converts a display name into its URL slug: lowercase, drop
// everything outside [a-z0-9] and whitespace, collapse whitespace runs to a
// single hyphen, trim leading/trailing hyphens.
//
//	Normalize("Newcastle upon Tyne") == "newcastle-upon-tyne"
//	Normalize("Saint Ives!!")        == "saint-ives"
//
// Punctuation (including hyphens) is stripped rather than converted, so
// "Wells-next-the-Sea" becomes "wellsnextthesea". That matches the slugs the
// directory has always published; changing it would break indexed URLs.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if inSpace && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			inSpace = false
		case r == ' ', r == '\t', r == '\n', r == '\r':
			inSpace = true
		}
	}
	return b.String()
}
