package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	cases := []struct {
		token string
		want  TargetType
		code  string
	}{
		{"uuid", TargetType{Token: "uuid", Scalar: ScalarUUID}, "uuid.UUID"},
		{" String ", TargetType{Token: "String", Scalar: ScalarString}, "string"},
		{"text", TargetType{Token: "text", Scalar: ScalarString}, "string"},
		{"integer", TargetType{Token: "integer", Scalar: ScalarInteger}, "int64"},
		{"FLOAT", TargetType{Token: "FLOAT", Scalar: ScalarFloat}, "float64"},
		{"boolean", TargetType{Token: "boolean", Scalar: ScalarBoolean}, "bool"},
		{"datetime", TargetType{Token: "datetime", Scalar: ScalarDatetime}, "time.Time"},
		{"emailstr", TargetType{Token: "emailstr", Scalar: ScalarEmail}, "string"},
		{"List[FamilyInvitation]", TargetType{Token: "List[FamilyInvitation]", Entity: "FamilyInvitation", List: true}, "[]FamilyInvitation"},
		{"list[ string ]", TargetType{Token: "list[ string ]", Scalar: ScalarString, List: true}, "[]string"},
		{"Family", TargetType{Token: "Family", Entity: "Family"}, "*Family"},
		{"Whatever", TargetType{Token: "Whatever", Entity: "Whatever"}, "*Whatever"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got := MapType(tc.token)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.code, got.String())
		})
	}
}

func TestTargetTypeNillable(t *testing.T) {
	assert.True(t, MapType("List[User]").Nillable())
	assert.True(t, MapType("User").Nillable())
	assert.False(t, MapType("uuid").Nillable())
	assert.True(t, MapType("emailstr").IsText())
	assert.False(t, MapType("integer").IsText())
}

func TestTargetTypePointer(t *testing.T) {
	cases := map[string]string{
		"string":    "*string",
		"emailstr":  "*string",
		"integer":   "*int64",
		"float":     "*float64",
		"boolean":   "*bool",
		"User":      "*User",
		"List[Tag]": "[]Tag",
	}
	for token, want := range cases {
		assert.Equal(t, want, fmt.Sprintf("%#v", MapType(token).Pointer()), token)
	}
}
