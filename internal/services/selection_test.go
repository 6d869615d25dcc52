package services

import (
	"testing"

	"vyronex/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	assert.Equal(t, Selection{"a", "b"}, ParseSelection(" a, ,b,a,"))
	assert.Empty(t, ParseSelection(""))
	assert.Equal(t, "a,b", ParseSelection("a,b").String())
}

func TestSelection_Toggle(t *testing.T) {
	start := ParseSelection("opt-red,opt-wrap")

	added := start.Toggle("opt-leather")
	assert.Equal(t, Selection{"opt-red", "opt-wrap", "opt-leather"}, added)
	assert.Equal(t, Selection{"opt-red", "opt-wrap"}, start)

	removed := added.Toggle("opt-red")
	assert.Equal(t, Selection{"opt-wrap", "opt-leather"}, removed)
	assert.False(t, removed.Contains("opt-red"))

	twice := start.Toggle("opt-red").Toggle("opt-red")
	assert.ElementsMatch(t, start, twice)

	assert.Equal(t, start, start.Toggle(""))
}

func TestGroupOptions_Empty(t *testing.T) {
	assert.Empty(t, GroupOptions(nil))
	groups := GroupOptions([]models.CustomizationOption{{OptionName: "Mystery"}})
	assert.Equal(t, []models.OptionGroup{{Type: "Other", Options: []models.CustomizationOption{{OptionName: "Mystery"}}}}, groups)
}

func TestCarousel(t *testing.T) {
	images := []string{"front.jpg", "side.jpg"}

	c := NewCarousel(images, 0)
	assert.Equal(t, "front.jpg", c.Current())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 1, c.Prev())
	assert.True(t, c.HasControls())

	wrapped := NewCarousel(images, 5)
	assert.Equal(t, "side.jpg", wrapped.Current())
	assert.Equal(t, 0, wrapped.Next())

	negative := NewCarousel(images, -1)
	assert.Equal(t, 1, negative.Index)

	single := NewCarousel([]string{"only.jpg"}, 3)
	assert.Equal(t, "only.jpg", single.Current())
	assert.False(t, single.HasControls())
	assert.Equal(t, 0, single.Next())

	empty := NewCarousel(nil, 2)
	assert.Equal(t, "", empty.Current())
	assert.False(t, empty.HasControls())
}
