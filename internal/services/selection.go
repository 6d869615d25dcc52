package services

import (
	"strings"

	"vyronex/internal/models"
)

// Selection is an ordered set of customization option ids.
type Selection []string

// ParseSelection reads a comma separated id list, dropping blanks and repeats.
func ParseSelection(raw string) Selection {
	return NewSelection(strings.Split(raw, ","))
}

func NewSelection(ids []string) Selection {
	selection := make(Selection, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !selection.Contains(id) {
			selection = append(selection, id)
		}
	}
	return selection
}

func (s Selection) Contains(id string) bool {
	for _, selected := range s {
		if selected == id {
			return true
		}
	}
	return false
}

// Toggle adds id when absent and removes it when present.
func (s Selection) Toggle(id string) Selection {
	if id == "" {
		return s
	}
	toggled := make(Selection, 0, len(s)+1)
	for _, selected := range s {
		if selected != id {
			toggled = append(toggled, selected)
		}
	}
	if len(toggled) == len(s) {
		toggled = append(toggled, id)
	}
	return toggled
}

func (s Selection) String() string {
	return strings.Join(s, ",")
}

// GroupOptions buckets options by type in order of first appearance.
// Options without a type share the "Other" bucket.
func GroupOptions(options []models.CustomizationOption) []models.OptionGroup {
	groups := make([]models.OptionGroup, 0)
	index := make(map[string]int)

	for _, option := range options {
		optionType := option.OptionType
		if optionType == "" {
			optionType = models.OtherOptionType
		}

		i, ok := index[optionType]
		if !ok {
			i = len(groups)
			index[optionType] = i
			groups = append(groups, models.OptionGroup{Type: optionType})
		}
		groups[i].Options = append(groups[i].Options, option)
	}

	return groups
}
