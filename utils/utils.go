package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var caseBoundary = regexp.MustCompile(`[A-Z]+[^A-Z\.]*`)

func SnakeCase(s string) string {
	split := caseBoundary.FindAllString(title(s), -1)
	for n, s := range split {
		s = strings.ToLower(s)
		split[n] = strings.TrimSuffix(s, "_")
	}
	return strings.Join(split, "_")
}

//title upper cases the first letter of each word so camel case splitting sees word starts
func title(s string) string {
	runes := []rune(s)
	prevIsLetter := false
	for i, r := range runes {
		if !prevIsLetter && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		prevIsLetter = unicode.IsLetter(r)
	}
	return string(runes)
}

func Contains(arr []string, s string) bool {
	for _, a := range arr {
		if s == a {
			return true
		}
	}
	return false
}
