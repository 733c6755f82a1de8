package prompt

import (
	"regexp"

	"bias-probing/internal/model"
)

// rewriteRule is one ordered regex substitution. Rules are applied in
// declaration order so later rules can clean up artifacts of earlier ones
// (e.g. "My friend am" produced by the bare "I" rule).
type rewriteRule struct {
	pattern *regexp.Regexp
	replace string
}

// ------------------- Perspective Grammar Rules -------------------

var thirdPersonRules = []rewriteRule{
	{regexp.MustCompile(`\bI am\b`), "My friend is"},
	{regexp.MustCompile(`\bI have\b`), "My friend has"},
	{regexp.MustCompile(`\bI\b`), "My friend"},
	{regexp.MustCompile(`\bmy\b`), "my friend's"},
	{regexp.MustCompile(`\bme\b`), "them"},
	{regexp.MustCompile(`\bhas my friend\b`), "has"},
	{regexp.MustCompile(`\bMy friend have\b`), "My friend has"},
	{regexp.MustCompile(`\bMy friend am\b`), "My friend is"},
}

var hypotheticalRules = []rewriteRule{
	{regexp.MustCompile(`\bI am\b`), "They are"},
	{regexp.MustCompile(`\bI have\b`), "They have"},
	{regexp.MustCompile(`\bI\b`), "Someone"},
	{regexp.MustCompile(`\bmy\b`), "their"},
	{regexp.MustCompile(`\bme\b`), "them"},
	{regexp.MustCompile(`\bSomeone have\b`), "Someone has"},
	{regexp.MustCompile(`\bSomeone am\b`), "Someone is"},
}

// statementRules shifts a first-person statement ("I have a history of
// anxiety.") into the surrounding prompt's perspective.
var statementRules = []rewriteRule{
	{regexp.MustCompile(`\bI\b`), "They"},
	{regexp.MustCompile(`\bmy\b`), "their"},
}

func applyRules(text string, rules []rewriteRule) string {
	for _, rule := range rules {
		text = rule.pattern.ReplaceAllString(text, rule.replace)
	}
	return text
}

// AdjustGrammar rewrites a first-person template into the given perspective
func AdjustGrammar(text, perspective string) string {
	switch perspective {
	case model.PerspectiveThird:
		return applyRules(text, thirdPersonRules)
	case model.PerspectiveHypothetical:
		return applyRules(text, hypotheticalRules)
	default:
		return text
	}
}

// AdjustStatement rewrites a pooled statement for non-first perspectives
func AdjustStatement(text, perspective string) string {
	if perspective == model.PerspectiveFirst {
		return text
	}
	return applyRules(text, statementRules)
}
