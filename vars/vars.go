package vars

import "strings"

func FirstNonZero[T comparable](values ...T) (ret T) {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return
}

func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
