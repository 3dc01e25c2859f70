package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var androidNames = []string{
	"android-activity-hardwareAccelerated",
	"android-applicationName",
	"android-configChanges",
	"android-installLocation",
	"android-launchMode",
	"android-manifest-hardwareAccelerated",
	"android-theme",
	"android-windowSoftInputMode",
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.InDelta(t, 1.0, Similarity("android-theme", "Android_Theme"), 0.0001)
	assert.Less(t, Similarity("android-theme", "ios-statusbar"), 0.5)
}

func TestSuggest(t *testing.T) {
	t.Run("typo", func(t *testing.T) {
		got := Suggest("android-instalLocation", androidNames, 0.8)
		assert.Equal(t, []string{"android-installLocation"}, got)
	})

	t.Run("case and separators", func(t *testing.T) {
		got := Suggest("android_launch_mode", androidNames, 0.8)
		assert.Equal(t, []string{"android-launchMode"}, got)
	})

	t.Run("exact name is not a suggestion", func(t *testing.T) {
		assert.Empty(t, Suggest("android-theme", androidNames, 0.8))
	})

	t.Run("unrelated", func(t *testing.T) {
		assert.Empty(t, Suggest("Orientation", androidNames, 0.8))
	})

	t.Run("capped", func(t *testing.T) {
		got := Suggest("android", androidNames, 0.0)
		assert.Len(t, got, MaxSuggestions)
	})
}
