package scanner

import (
	"fmt"
	"regexp"
)

// CompileNamePattern compiles a filename pattern into a case-insensitive,
// end-anchored regular expression. A pattern like `\.log` therefore matches
// any filename ending in ".log", regardless of case.
func CompileNamePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(fmt.Sprintf("(?i)%s$", pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid filename pattern %q: %w", pattern, err)
	}
	return re, nil
}
