package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	res := env.MustRun("version")
	assert.Contains(t, res.Stdout, "folio v")
}

func TestInitCreatesStarterDocument(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	doc := env.Document()
	require.Contains(t, doc, "personal")
	require.Contains(t, doc, "config")

	cfg := doc["config"].(map[string]any)
	theme := cfg["theme"].(map[string]any)
	assert.Equal(t, "#1E3A8A", theme["primaryColor"])
	logo := cfg["logo"].(map[string]any)
	assert.Equal(t, "text", logo["type"])
	assert.Equal(t, "Portfolio", logo["content"])
}

func TestInitRefusesToOverwrite(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	res := env.Run("init")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "already exists")
}

func TestMissingDocumentExitCode(t *testing.T) {
	env := NewTestEnv(t)

	res := env.Run("show")
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Stderr, "not found")
}

func TestMalformedDocumentExitCode(t *testing.T) {
	env := NewTestEnv(t)
	env.SeedDocument("{broken")

	res := env.Run("show")
	assert.Equal(t, 4, res.ExitCode)
	assert.Contains(t, res.Stderr, "not valid JSON")
}

func TestPersonalSet(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("personal", "set", "--name", "Ada Lovelace", "--title", "Animator")
	env.MustRun("personal", "set", "--tagline", "moving pictures")

	personal := env.Document()["personal"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", personal["name"])
	assert.Equal(t, "Animator", personal["title"])
	assert.Equal(t, "moving pictures", personal["tagline"], "second invocation must not clear earlier fields")
}

func TestSkillProficiencyClampEndToEnd(t *testing.T) {
	env := NewTestEnv(t)
	env.SeedDocument(`{
  "personal": {"name": "", "title": "", "tagline": "", "heroDescription": ""},
  "about": {"bio": "", "description": "", "expertise": []},
  "skills": [{"name": "Sketching", "category": "Traditional", "proficiency": 150, "icon": "✎"}],
  "projects": [],
  "contact": {"email": "", "location": "", "availability": "", "social": []}
}`)

	// Any committing invocation rewrites the document through the
	// repository, clamping the out-of-range value on the way.
	env.MustRun("skill", "update", "1", "--category", "Traditional")

	doc := env.Document()
	skills := doc["skills"].([]any)
	require.Len(t, skills, 1)
	assert.Equal(t, float64(100), skills[0].(map[string]any)["proficiency"])

	// The missing config section was backfilled by the same commit.
	assert.Contains(t, doc, "config")
}

func TestSkillAddListRemove(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("skill", "add", "--name", "Sketching", "--category", "Traditional", "--proficiency", "90", "--icon", "✎")
	env.MustRun("skill", "add", "--name", "Rigging", "--category", "3D", "--proficiency", "-5")

	res := env.MustRun("skill", "list", "--json")
	var skills []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &skills))
	require.Len(t, skills, 2)
	assert.Equal(t, float64(90), skills[0]["proficiency"])
	assert.Equal(t, "✎", skills[0]["icon"])
	assert.Equal(t, float64(0), skills[1]["proficiency"], "negative input clamps to zero")
	assert.Equal(t, "⚡", skills[1]["icon"], "omitting --icon stores the default")

	env.MustRun("skill", "remove", "1")
	res = env.MustRun("skill", "list", "--json")
	skills = nil
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &skills))
	require.Len(t, skills, 1)
	assert.Equal(t, "Rigging", skills[0]["name"])
}

func TestSkillRemoveOutOfRange(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	res := env.Run("skill", "remove", "5")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "out of range")
}

func TestProjectIDSequenceEndToEnd(t *testing.T) {
	env := NewTestEnv(t)
	env.SeedDocument(`{
  "personal": {"name": "", "title": "", "tagline": "", "heroDescription": ""},
  "about": {"bio": "", "description": "", "expertise": []},
  "skills": [],
  "projects": [{"id": 3, "title": "First", "description": "", "thumbnail": "", "videoUrl": "", "tags": [], "year": 2022}],
  "contact": {"email": "", "location": "", "availability": "", "social": []}
}`)

	res := env.MustRun("project", "add", "--title", "Second", "--year", "2024")
	assert.Contains(t, res.Stdout, "id 4")

	env.MustRun("project", "remove", "1")

	res = env.MustRun("project", "add", "--title", "Third")
	assert.Contains(t, res.Stdout, "id 5", "removed ids are not recycled")

	projects := env.Document()["projects"].([]any)
	require.Len(t, projects, 2)
	assert.Equal(t, float64(4), projects[0].(map[string]any)["id"])
	assert.Equal(t, float64(5), projects[1].(map[string]any)["id"])
}

func TestProjectYearValidation(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	res := env.Run("project", "add", "--title", "Film", "--year", "twenty24")
	assert.Equal(t, 1, res.ExitCode)
	assert.Contains(t, res.Stderr, "not a number")
}

func TestProjectTagsCleaned(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("project", "add", "--title", "Film", "--tags", " 2d , animation ,, ")

	projects := env.Document()["projects"].([]any)
	require.Len(t, projects, 1)
	tags := projects[0].(map[string]any)["tags"].([]any)
	assert.Equal(t, []any{"2d", "animation"}, tags)
}

func TestExpertiseLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("expertise", "add", "2D Animation")
	env.MustRun("expertise", "add", "Storyboarding")

	res := env.MustRun("expertise", "list")
	assert.Contains(t, res.Stdout, "1. 2D Animation")
	assert.Contains(t, res.Stdout, "2. Storyboarding")

	res = env.Run("expertise", "add", "   ")
	assert.Equal(t, 1, res.ExitCode)

	env.MustRun("expertise", "remove", "1")
	res = env.MustRun("expertise", "list")
	assert.Contains(t, res.Stdout, "1. Storyboarding")
}

func TestSocialLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("social", "add", "--platform", "Instagram", "--url", "https://instagram.com/ada")
	env.MustRun("social", "update", "1", "--platform", "Vimeo")

	contact := env.Document()["contact"].(map[string]any)
	social := contact["social"].([]any)
	require.Len(t, social, 1)
	link := social[0].(map[string]any)
	assert.Equal(t, "Vimeo", link["platform"])
	assert.Equal(t, "https://instagram.com/ada", link["url"])
	assert.Equal(t, "🔗", link["icon"], "default icon from add survives update")
}

func TestThemeAndLogo(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("theme", "set", "--primary-color", "#FF5733", "--font-body", "Lato")
	env.MustRun("logo", "set", "--content", "Ada Animates")

	cfg := env.Document()["config"].(map[string]any)
	theme := cfg["theme"].(map[string]any)
	assert.Equal(t, "#FF5733", theme["primaryColor"])
	assert.Equal(t, "Lato", theme["fontBody"])
	assert.Equal(t, "#F3F4F6", theme["secondaryColor"], "untouched fields keep defaults")

	logo := cfg["logo"].(map[string]any)
	assert.Equal(t, "text", logo["type"])
	assert.Equal(t, "Ada Animates", logo["content"])

	res := env.Run("logo", "set", "--type", "hologram")
	assert.Equal(t, 1, res.ExitCode)
}

func TestLogoUpload(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	src := filepath.Join(env.TempDir, "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("png bytes"), 0o644))

	env.MustRun("logo", "upload", src)

	logo := env.Document()["config"].(map[string]any)["logo"].(map[string]any)
	assert.Equal(t, "image", logo["type"], "uploading an image forces the image type")
	assert.Equal(t, "assets/logo.png", logo["content"])

	copied, err := os.ReadFile(filepath.Join(env.SiteRoot, "assets", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), copied)
}

func TestBackupTrail(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	res := env.MustRun("backups")
	assert.Contains(t, res.Stdout, "No backups yet", "init saves without a backup")

	env.MustRun("personal", "set", "--name", "Ada")

	res = env.MustRun("backups", "--json")
	var names []string
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &names))
	require.NotEmpty(t, names)
	assert.True(t, strings.HasPrefix(names[0], "portfolio-data_"))

	entries, err := os.ReadDir(env.BackupDir)
	require.NoError(t, err)
	assert.Len(t, entries, len(names))
}

func TestUnicodeSurvivesRoundTrip(t *testing.T) {
	env := NewTestEnv(t)
	env.Init()

	env.MustRun("skill", "add", "--name", "スケッチ", "--icon", "✎")

	raw, err := os.ReadFile(env.DataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "スケッチ")
	assert.Contains(t, string(raw), "✎")
	assert.NotContains(t, string(raw), `\u30b9`, "no unicode escaping in the saved file")
}
