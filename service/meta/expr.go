package meta

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnvExpr replaces ${env.KEY} with the value of KEY, or "" if unset.
// An expression whose key is not an identifier is kept literally.
func expandEnvExpr(value string) string {
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], envPrefix)
		if idx < 0 {
			b.WriteString(value[i:])
			return b.String()
		}
		b.WriteString(value[i : i+idx])
		start := i + idx + len(envPrefix)
		end := strings.IndexByte(value[start:], '}')
		if end < 0 {
			b.WriteString(value[i+idx:])
			return b.String()
		}
		key := value[start : start+end]
		if !isIdentifier(key) {
			b.WriteString(envPrefix)
			i = start
			continue
		}
		b.WriteString(os.Getenv(key))
		i = start + end + 1
	}
}

func isIdentifier(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
