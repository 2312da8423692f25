package formater

import "strings"

func ToLower(text string) string {
	return strings.ToLower(text)
}

// channel names are matched case-insensitively against upstream logins
func SameChannel(a, b string) bool {
	return strings.EqualFold(a, b)
}
