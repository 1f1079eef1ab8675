package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferValueType(t *testing.T) {
	tests := map[string]ValueType{
		"resume_download_enabled": Boolean,
		"hero_text":               LongText,
		"about_bio":               LongText,
		"site_title":              ShortText,
		"contact_email":           ShortText,
	}
	for key, want := range tests {
		assert.Equal(t, want, InferValueType(key), key)
	}
}

func TestValueType_Check(t *testing.T) {
	assert.NoError(t, Boolean.Check("true"))
	assert.NoError(t, Boolean.Check("false"))
	assert.True(t, errors.Is(Boolean.Check("yes"), ErrInvalidValue))
	assert.True(t, errors.Is(ShortText.Check("a\nb"), ErrInvalidValue))
	assert.NoError(t, LongText.Check("a\nb"))
	assert.True(t, errors.Is(ValueType("html").Check("x"), ErrInvalidValue))
}

func TestSetting_NormalizeKeepsDeclaredType(t *testing.T) {
	s := Setting{Key: "hero_text", Value: "one line", ValueType: ShortText}
	require.NoError(t, s.Normalize())
	assert.Equal(t, ShortText, s.ValueType)

	legacy := Setting{Key: "analytics_enabled", Value: "maybe"}
	err := legacy.Normalize()
	assert.Equal(t, Boolean, legacy.ValueType)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestGroupByKey(t *testing.T) {
	groups := GroupByKey([]Setting{
		{Key: "theme_color"},
		{Key: "hero_title"},
		{Key: "contact_email"},
		{Key: "site_title"},
		{Key: "maintenance_enabled"},
	})

	require.Len(t, groups, 4)
	assert.Equal(t, "General Settings", groups[0].Title)
	assert.Equal(t, "hero_title", groups[0].Settings[0].Key)
	assert.Equal(t, "site_title", groups[0].Settings[1].Key)
	assert.Equal(t, "Contact Settings", groups[1].Title)
	assert.Equal(t, "Theme Settings", groups[2].Title)
	assert.Equal(t, "Other Settings", groups[3].Title)
	assert.Equal(t, "maintenance_enabled", groups[3].Settings[0].Key)
}
