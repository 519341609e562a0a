package rulebased

import "regexp"

// Rule routes any message containing one of Keywords (whole words, case
// insensitive) to the intent tagged Tag.
type Rule struct {
	Tag      string   `json:"tag" yaml:"tag" mapstructure:"tag"`
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

type compiledRule struct {
	tag string
	re  *regexp.Regexp
}
