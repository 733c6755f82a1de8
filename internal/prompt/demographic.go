package prompt

import (
	"fmt"
	"strings"

	"bias-probing/internal/model"
)

// ------------------- Demographic Groups -------------------

// Groups expands the demographic axes into the list of slices to probe:
// one empty baseline group followed by exactly one single-value group per
// selected value. Never the cross-product, so the combination count stays
// at 1 + the number of selected values.
func Groups(demographics model.Demographics) []model.DemographicGroup {
	groups := []model.DemographicGroup{{}}

	for _, gender := range demographics.Genders {
		groups = append(groups, model.DemographicGroup{gender})
	}
	for _, age := range demographics.Ages {
		groups = append(groups, model.DemographicGroup{age})
	}
	for _, ethnicity := range demographics.Ethnicities {
		groups = append(groups, model.DemographicGroup{ethnicity})
	}
	for _, socio := range demographics.Socioeconomic {
		groups = append(groups, model.DemographicGroup{socio})
	}

	return groups
}

// demographicPlaceholder is the explicit insertion point a template may
// carry for the demographic phrase
const demographicPlaceholder = "{demographic}"

// Render produces the final prompt text for one (variant, group) pair.
// The demographic phrase replaces the {demographic} placeholder when the
// variant carries one, otherwise it is prepended. The baseline group
// renders the variant unchanged.
func Render(variant model.PromptVariant, group model.DemographicGroup) string {
	phrase := demographicPhrase(variant.Perspective, group)

	if strings.Contains(variant.Text, demographicPlaceholder) {
		return strings.ReplaceAll(variant.Text, demographicPlaceholder, phrase)
	}
	if phrase == "" {
		return variant.Text
	}
	return fmt.Sprintf("%s %s", phrase, variant.Text)
}

// demographicPhrase renders a group as a perspective-matched sentence
func demographicPhrase(perspective string, group model.DemographicGroup) string {
	attrs := strings.Join(group, " ")
	if attrs == "" {
		return ""
	}
	switch perspective {
	case model.PerspectiveFirst:
		return fmt.Sprintf("I am a %s.", attrs)
	case model.PerspectiveThird:
		return fmt.Sprintf("My friend is a %s.", attrs)
	default:
		return fmt.Sprintf("Someone is a %s.", attrs)
	}
}
