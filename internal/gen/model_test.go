package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caramello/internal/dsl"
)

func TestEmitModelUser(t *testing.T) {
	src := EmitModel(compileSample(t)["User"]).GoString()

	assert.Contains(t, src, "// "+Header)
	assert.Contains(t, src, TableMarker("User", "users"))
	assert.Contains(t, src, ReadMarker("User"))
	assert.Contains(t, src, "type UserCreate struct")
	assert.Contains(t, src, "type UserUpdate struct")

	// persisted
	assert.Regexp(t, `ID\s+int64\s+`+"`"+`gorm:"column:id;primaryKey;not null" json:"id"`+"`", src)
	assert.Regexp(t, `UUID\s+uuid\.UUID\s+`+"`"+`gorm:"column:uuid;type:uuid;uniqueIndex;not null" json:"uuid"`+"`", src)
	assert.Regexp(t, `FullName\s+string\s+`+"`"+`gorm:"column:full_name;size:100;not null" json:"full_name"`+"`", src)
	assert.Regexp(t, `HashedPassword\s+\*string\s+`+"`"+`gorm:"column:hashed_password" json:"-"`+"`", src)
	assert.Regexp(t, `Families\s+\[\]Family\s+`+"`"+`gorm:"many2many:family_members" json:"families,omitempty"`+"`", src)
	assert.Regexp(t, `SentInvitations\s+\[\]FamilyInvitation\s+`+"`"+`gorm:"foreignKey:InviterID"`, src)
	assert.Contains(t, src, `"Families": &FamilyMember{}`)
	assert.Contains(t, src, "func (m *User) BeforeCreate(_ *gorm.DB) error")
	assert.Contains(t, src, "m.UUID = uuid.New()")
	assert.Contains(t, src, "func (m *User) BeforeUpdate(_ *gorm.DB) error")

	// create: the secret is a required plaintext input
	assert.Regexp(t, `Password\s+string\s+`+"`"+`binding:"required,max=72" json:"password"`+"`", src)
	assert.Regexp(t, `FullName\s+string\s+`+"`"+`binding:"required,max=100" json:"full_name"`+"`", src)
	assert.Regexp(t, `Email\s+string\s+`+"`"+`binding:"required,email" json:"email"`+"`", src)
	assert.Contains(t, src, "bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)")
	assert.Contains(t, src, "m.IsActive = true")

	// update: everything optional
	assert.Regexp(t, `Password\s+\*string\s+`+"`"+`binding:"omitempty,max=72" json:"password"`+"`", src)
	assert.Contains(t, src, "func (in UserUpdate) Apply(m *User) error")
}

func TestEmitModelViews(t *testing.T) {
	user := compileSample(t)["User"]
	src := EmitModel(user).GoString()

	read := section(t, src, "type UserRead struct", "}")
	assert.NotContains(t, read, "HashedPassword")
	assert.NotRegexp(t, `\bID\s+int64`, read)
	assert.Contains(t, read, `json:"uuid"`)
	assert.Contains(t, read, `json:"created_at"`)

	create := section(t, src, "type UserCreate struct", "}")
	for _, gone := range []string{`json:"id"`, `json:"uuid"`, `json:"created_at"`, `json:"updated_at"`, `json:"hashed_password"`} {
		assert.NotContains(t, create, gone)
	}

	update := section(t, src, "type UserUpdate struct", "}")
	assert.NotContains(t, update, `json:"hashed_password"`)
	assert.NotContains(t, update, "required")
}

func TestEmitModelLiteralDefault(t *testing.T) {
	src := EmitModel(compileSample(t)["Family"]).GoString()
	assert.Regexp(t, `Status\s+\*string\s+`+"`"+`binding:"omitempty,max=20" json:"status"`, src)
	assert.Contains(t, src, `m.Status = "active"`)
	assert.Regexp(t, `Description\s+\*string`, src)
	assert.Contains(t, src, `"Members": &FamilyMember{}`)
}

func TestEmitModelLinkEntity(t *testing.T) {
	src := EmitModel(compileSample(t)["FamilyMember"]).GoString()
	assert.Contains(t, src, TableMarker("FamilyMember", "family_members"))
	assert.Regexp(t, `UserID\s+int64\s+`+"`"+`gorm:"column:user_id;primaryKey;not null"`, src)
	assert.Regexp(t, `User\s+\*User\s+`+"`"+`gorm:"foreignKey:UserID" json:"user,omitempty"`, src)
	assert.Contains(t, src, "m.JoinedAt.IsZero()")
	assert.NotContains(t, src, "JoinTables")
}

func TestEmitModelListOfForwardReference(t *testing.T) {
	e := &dsl.Entity{Name: "Inbox", Fields: []dsl.Field{
		{Name: "id", Type: "integer", PrimaryKey: true},
		{Name: "tags", Type: "List[string]"},
		{Name: "pending", Type: "List[FamilyInvitation]"},
	}}
	ce, _ := compileOne(t, e)
	src := EmitModel(ce).GoString()
	assert.Regexp(t, `Pending\s+\[\]FamilyInvitation\s+`+"`"+`json:"pending,omitempty"`, src)
	assert.Regexp(t, `Tags\s+\[\]string\s+`+"`"+`gorm:"column:tags;serializer:json" json:"tags"`, src)
}

func TestRenderModelDeterministic(t *testing.T) {
	for name, e := range compileSample(t) {
		a, err := RenderModel(e)
		require.NoError(t, err, name)
		b, err := RenderModel(e)
		require.NoError(t, err, name)
		assert.Equal(t, string(a), string(b), name)
	}
}

// section returns src from the first start up to the next end after it.
func section(t *testing.T, src, start, end string) string {
	t.Helper()
	i := strings.Index(src, start)
	require.GreaterOrEqual(t, i, 0, start)
	rest := src[i:]
	j := strings.Index(rest[len(start):], end)
	require.GreaterOrEqual(t, j, 0, end)
	return rest[:len(start)+j]
}
