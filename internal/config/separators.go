package config

import (
	"fmt"
	"sort"
	"strings"
)

// Separator names accepted by config keys and CLI flags. An empty value
// means auto-detect.
var (
	delimiterNames = map[string]rune{
		",": ',', "comma": ',',
		";": ';', "semicolon": ';',
		"|": '|', "pipe": '|',
		"tab": '\t', `\t`: '\t', "\t": '\t',
	}
	decimalNames = map[string]rune{
		",": ',', "comma": ',',
		".": '.', "dot": '.',
	}
	thousandsNames = map[string]rune{
		",": ',', "comma": ',',
		".": '.', "dot": '.',
		" ": ' ', "space": ' ',
	}
)

func lookupSeparator(what string, names map[string]rune, s string) (rune, error) {
	if s == "" || strings.EqualFold(strings.TrimSpace(s), "auto") {
		return 0, nil
	}
	if r, ok := names[s]; ok {
		return r, nil
	}
	if r, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	var valid []string
	for k := range names {
		if strings.TrimSpace(k) != "" && k != `\t` {
			valid = append(valid, fmt.Sprintf("%q", k))
		}
	}
	sort.Strings(valid)
	return 0, fmt.Errorf("unsupported %s %q (use %s)", what, s, strings.Join(valid, ", "))
}

// ParseDelimiter maps a delimiter name (",", "comma", ";", "semicolon",
// "|", "pipe", "tab") to its rune.
func ParseDelimiter(s string) (rune, error) {
	return lookupSeparator("delimiter", delimiterNames, s)
}

// ParseDecimalSeparator maps ",", "comma", "." or "dot" to its rune.
func ParseDecimalSeparator(s string) (rune, error) {
	return lookupSeparator("decimal separator", decimalNames, s)
}

// ParseThousandsSeparator maps ",", "comma", ".", "dot" or "space" to its rune.
func ParseThousandsSeparator(s string) (rune, error) {
	return lookupSeparator("thousands separator", thousandsNames, s)
}

// validate rejects values loaded from file or environment that Set would refuse.
func (c *Global) validate() error {
	if _, err := ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	if _, err := ParseDecimalSeparator(c.DecimalSeparator); err != nil {
		return err
	}
	if _, err := ParseThousandsSeparator(c.ThousandsSeparator); err != nil {
		return err
	}
	return nil
}
