package config

import (
	regexp2 "github.com/dlclark/regexp2"
)

// RegexEq is a compiled pattern that compares equal to another RegexEq with
// the same source text. Matching is an unanchored search.
type RegexEq struct {
	re *regexp2.Regexp
}

func ParseRegexEq(pattern string) (RegexEq, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return RegexEq{}, err
	}
	return RegexEq{re: re}, nil
}

func MustRegexEq(pattern string) RegexEq {
	r, err := ParseRegexEq(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func (r RegexEq) String() string {
	if r.re == nil {
		return ""
	}
	return r.re.String()
}

// Equal reports pattern equality
func (r RegexEq) Equal(other RegexEq) bool {
	return r.String() == other.String()
}

// MatchString reports whether the pattern occurs anywhere in s
func (r RegexEq) MatchString(s string) bool {
	if r.re == nil {
		return false
	}
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

func (r RegexEq) MarshalYAML() (any, error) { return r.String(), nil }

func regexEqual(a, b *RegexEq) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
