package validator

import (
	"regexp"
	"strings"
)

// placeholderRun is the length of a run of one repeated digit that marks a
// phone number as filler ("0000000", "9999999").
const placeholderRun = 7

var (
	emailRegex = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	phoneFormatting = strings.NewReplacer("(", "", ")", "", " ", "", ".", "")
)

// Phone rejects numbers containing seven or more consecutive copies of the
// same digit once parentheses, spaces and dots are removed. An empty value is
// accepted; requiredness is left to native constraint validation.
func Phone(value string) bool {
	num := phoneFormatting.Replace(value)
	if num == "" {
		return true
	}

	run := 0
	var last rune
	for _, r := range num {
		if r >= '0' && r <= '9' && r == last {
			run++
		} else {
			run = 1
		}
		last = r
		if r >= '0' && r <= '9' && run >= placeholderRun {
			return false
		}
	}
	return true
}

// Email accepts addresses with a dotted or quoted local part and a domain made
// of dotted labels ending in a top label of two or more letters, or a
// bracketed IPv4 literal.
func Email(value string) bool {
	return emailRegex.MatchString(value)
}
