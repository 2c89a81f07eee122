package user

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsFromForm(t *testing.T) {
	form := url.Values{
		"name":        {"Jane"},
		"socialLinks": {`[{"platform":"github","url":"https://github.com/jane"}]`, "ignored"},
		"empty":       {},
	}
	fields := FieldsFromForm(form)
	assert.Equal(t, "Jane", fields["name"])
	assert.Equal(t, `[{"platform":"github","url":"https://github.com/jane"}]`, fields["socialLinks"])
	_, ok := fields["empty"]
	assert.False(t, ok)
}

func TestNormalizeProfileFieldsParsesStringArrays(t *testing.T) {
	fields := map[string]interface{}{
		"name":        "Jane",
		"socialLinks": `[{"platform":"github","url":"https://github.com/jane"}]`,
	}
	NormalizeProfileFields(fields)

	assert.Equal(t, "Jane", fields["name"])
	parsed, ok := fields["socialLinks"].([]interface{})
	require.True(t, ok, "socialLinks should be parsed into a slice")
	require.Len(t, parsed, 1)
}

func TestNormalizeProfileFieldsKeepsStructuredValues(t *testing.T) {
	links := []interface{}{map[string]interface{}{"platform": "github", "url": "https://github.com/jane"}}
	fields := map[string]interface{}{"socialLinks": links}
	NormalizeProfileFields(fields)
	assert.Equal(t, links, fields["socialLinks"])
}

func TestNormalizeProfileFieldsPassesThroughUnparseable(t *testing.T) {
	fields := map[string]interface{}{"skills": "{not json"}
	NormalizeProfileFields(fields)
	assert.Equal(t, "{not json", fields["skills"])
}

func TestNormalizeProfileFieldsLeavesAbsentFieldsAbsent(t *testing.T) {
	fields := map[string]interface{}{"bio": "hello"}
	NormalizeProfileFields(fields)
	_, ok := fields["socialLinks"]
	assert.False(t, ok)
}

func TestDecodeProfileUpdate(t *testing.T) {
	fields := NormalizeProfileFields(map[string]interface{}{
		"name":        "Jane",
		"email":       "jane@example.com",
		"socialLinks": `[{"platform":"github","url":"https://github.com/jane"}]`,
	})
	dto, err := DecodeProfileUpdate(fields)
	require.NoError(t, err)
	require.NotNil(t, dto.Name)
	assert.Equal(t, "Jane", *dto.Name)
	require.NotNil(t, dto.SocialLinks)
	require.Len(t, *dto.SocialLinks, 1)
	assert.Equal(t, "github", (*dto.SocialLinks)[0].Platform)
	assert.Nil(t, dto.Bio)
}

func TestDecodeProfileUpdateReportsTypeMismatch(t *testing.T) {
	_, err := DecodeProfileUpdate(map[string]interface{}{"skills": "{not json"})
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "skills", ferr.Field)
}

func TestDecodeProfileUpdateReportsFirstViolatedField(t *testing.T) {
	fields := map[string]interface{}{
		"socialLinks": []interface{}{
			map[string]interface{}{"platform": "github", "url": "not-a-url"},
		},
	}
	_, err := DecodeProfileUpdate(fields)
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "socialLinks[0].url", ferr.Field)
	assert.Contains(t, ferr.Reason, "url")
}

func TestDecodeProfileUpdateRejectsBadEmail(t *testing.T) {
	_, err := DecodeProfileUpdate(map[string]interface{}{"email": "nope"})
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "email", ferr.Field)
}

func TestUpdateSetOnlyCarriesPresentFields(t *testing.T) {
	email := " Jane@Example.COM "
	dto := &ProfileUpdateDTO{Email: &email}
	set := dto.updateSet()
	assert.Equal(t, "jane@example.com", set["email"])
	assert.Len(t, set, 1)
}
