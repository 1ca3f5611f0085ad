package utils

import (
	"regexp"
	"strings"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidUsername checks the letters/digits/@/./+/-/_ pattern admin usernames allow.
func ValidUsername(s string) bool {
	return usernameRe.MatchString(strings.TrimSpace(s))
}
