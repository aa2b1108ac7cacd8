package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	catalog := []string{"Canary", "Blue-Green"}

	tests := []struct {
		name  string
		value string
		want  Classification
	}{
		{"known", "Canary", Classification{Kind: Known, Value: "Canary"}},
		{"known with padding", "  Blue-Green ", Classification{Kind: Known, Value: "Blue-Green"}},
		{"custom", "My Plan", Classification{Kind: Custom, Value: "My Plan"}},
		{"case differs is custom", "canary", Classification{Kind: Custom, Value: "canary"}},
		{"empty", "", Classification{Kind: Unset}},
		{"placeholder", SentinelDeployment, Classification{Kind: Unset}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, catalog))
		})
	}
}

func TestChoice_ResolveAndBack(t *testing.T) {
	catalog := []string{"Canary", "Blue-Green"}

	other := Choice{Selected: OtherMarker, Other: "My Plan"}
	assert.Equal(t, "My Plan", other.Resolve(OtherMarker))
	assert.Equal(t, other, ChoiceFromValue("My Plan", catalog, OtherMarker))

	assert.Equal(t, Choice{Selected: "Canary"}, ChoiceFromValue("Canary", catalog, OtherMarker))
	assert.Equal(t, Choice{}, ChoiceFromValue("", catalog, OtherMarker))

	assert.Equal(t, "", Choice{Selected: SentinelSelectOne}.Resolve(OtherMarker))
	assert.Equal(t, "", Choice{}.Resolve(OtherMarker))
	assert.False(t, Choice{Selected: SentinelCategory}.IsSet())
}

func TestChoice_RoleOtherTrimmed(t *testing.T) {
	c := Choice{Selected: OtherRoleMarker, Other: "  I run the NOC.  "}
	assert.Equal(t, "I run the NOC.", c.Resolve(OtherRoleMarker))
}
