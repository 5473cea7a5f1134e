package videos

import "regexp"

// ID is a Bilibili BV identifier such as BV1xx411c7mD.
type ID string

var idPattern = regexp.MustCompile(`^BV[a-zA-Z0-9]+$`)

// Valid reports whether the identifier has the BV prefix followed by alphanumerics.
func (id ID) Valid() bool {
	return idPattern.MatchString(string(id))
}

func (id ID) String() string {
	return string(id)
}

type idMatcher struct {
	name  string
	re    *regexp.Regexp
	group int
}

// idMatchers are tried in order and the first hit wins. The bare token
// comes first so partially mangled URLs still resolve.
var idMatchers = []idMatcher{
	{name: "token", re: regexp.MustCompile(`BV[a-zA-Z0-9]+`), group: 0},
	{name: "video_path", re: regexp.MustCompile(`bilibili\.com/video/(BV[a-zA-Z0-9]+)`), group: 1},
}

// ExtractID finds the BV identifier in s.
func ExtractID(s string) (ID, bool) {
	for _, m := range idMatchers {
		match := m.re.FindStringSubmatch(s)
		if len(match) <= m.group {
			continue
		}
		if id := ID(match[m.group]); id.Valid() {
			return id, true
		}
	}
	return "", false
}
