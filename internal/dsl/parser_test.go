package dsl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	writeFile(t, path, "x-caramello-entities:\n  - user.yaml\n  - ''\n  - family.yaml\n")

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"user.yaml", "family.yaml"}, m.Entities)
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrManifestNotFound)

	empty := filepath.Join(dir, "empty.yaml")
	writeFile(t, empty, "x-caramello-entities: []\n")
	_, err = LoadManifest(empty)
	assert.ErrorIs(t, err, ErrNoEntities)

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "x-caramello-entities: [unterminated\n")
	_, err = LoadManifest(broken)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrManifestNotFound))
}

func TestLoadEntity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tag.yaml")
	writeFile(t, path, `
name: Tag
description: A label.
fields:
  - name: id
    type: integer
    primary_key: true
  - name: label
    type: string
    nullable: false
    max_length: 30
    default: misc
relationships:
  - name: notes
    type: List[Note]
    back_populates: tag
`)
	e, err := LoadEntity(path)
	require.NoError(t, err)

	assert.Equal(t, "Tag", e.Name)
	assert.Equal(t, "tag", e.Table())
	assert.Equal(t, "tag.yaml", e.Source)
	require.Len(t, e.Fields, 2)
	assert.True(t, e.Fields[0].DeclaredNullable(), "nullable defaults to true")
	assert.False(t, e.Fields[1].DeclaredNullable())
	assert.Equal(t, "misc", e.Fields[1].Default)
	assert.Equal(t, 30, e.Fields[1].MaxLength)

	r, ok := e.Relationship("notes")
	require.True(t, ok)
	assert.Equal(t, "tag", r.BackPopulates)
}

func TestLoadEntityErrors(t *testing.T) {
	dir := t.TempDir()
	var le *LoadError

	_, err := LoadEntity(filepath.Join(dir, "nope.yaml"))
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, os.ErrNotExist)

	nameless := filepath.Join(dir, "nameless.yaml")
	writeFile(t, nameless, "fields: []\n")
	_, err = LoadEntity(nameless)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, nameless, le.Path)
}

func TestLoadManifestEntitiesSkipsBrokenDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "manifest.yaml"), "x-caramello-entities: [a.yaml, broken.yaml, missing.yaml, b.yaml]\n")
	writeFile(t, filepath.Join(dir, "entities", "a.yaml"), "name: A\n")
	writeFile(t, filepath.Join(dir, "entities", "broken.yaml"), "name: [\n")
	writeFile(t, filepath.Join(dir, "entities", "b.yaml"), "name: B\n")

	docs, err := LoadManifestEntities(filepath.Join(dir, "manifest.yaml"), filepath.Join(dir, "entities"))
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.NoError(t, docs[0].Err)
	assert.Error(t, docs[1].Err)
	assert.Error(t, docs[2].Err)
	assert.NoError(t, docs[3].Err)

	loaded := Loaded(docs)
	require.Len(t, loaded, 2)
	assert.Equal(t, []string{"A", "B"}, NewCatalog(loaded).Names())
}

func TestLoadSampleDSL(t *testing.T) {
	docs, err := LoadManifestEntities("../../dsl/manifest.yaml", "../../dsl/entities")
	require.NoError(t, err)
	cat := NewCatalog(Loaded(docs))
	assert.Equal(t, []string{"User", "Family", "FamilyMember", "FamilyInvitation"}, cat.Names())
	assert.Empty(t, Lint(cat))

	fm, ok := cat.Lookup("FamilyMember")
	require.True(t, ok)
	assert.True(t, fm.IsLinkModel)
	assert.Equal(t, "family_members", fm.Table())
}
