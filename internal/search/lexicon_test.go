package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_PrayerGroup(t *testing.T) {
	lex := DefaultLexicon()
	require.Greater(t, lex.Len(), 10)

	syn := lex.Synonyms("prayer")
	assert.Contains(t, syn, "সালাত")
	assert.Contains(t, syn, "الصلاة")
	assert.Contains(t, syn, "salah")
	assert.NotContains(t, syn, "prayer")

	// case-folded, trimmed lookup from any language
	assert.Equal(t, syn, lex.Synonyms("  PRAYER "))
	assert.Contains(t, lex.Synonyms("সালাত"), "prayer")
	assert.Contains(t, lex.Synonyms("الصلاة"), "namaz")

	assert.Empty(t, lex.Synonyms("bicycle"))
	assert.NotNil(t, lex.Synonyms("bicycle"))
}

func TestParseLexicon_MergesGroupsAndDedupes(t *testing.T) {
	src := `
groups:
  - en: [light, Nur]
    ar: [نور]
  - en: [nur, guidance]
  - en: [lonely]
`
	lex, err := ParseLexicon(strings.NewReader(src))
	require.NoError(t, err)
	// single-term groups carry no synonyms and are dropped
	require.Equal(t, 2, lex.Len())
	require.Equal(t, []string{"light", "نور", "guidance"}, lex.Synonyms("NUR"))
	require.Empty(t, lex.Synonyms("lonely"))
}

func TestParseLexicon_RejectsUnknownFields(t *testing.T) {
	_, err := ParseLexicon(strings.NewReader("groups:\n  - fr: [priere]\n"))
	require.Error(t, err)
}

func TestLoadLexicon(t *testing.T) {
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	require.NotEmpty(t, lex.Synonyms("quran"))

	path := filepath.Join(t.TempDir(), "syn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("groups:\n  - en: [a1, b1]\n"), 0o600))
	lex, err = LoadLexicon(path)
	require.NoError(t, err)
	require.Equal(t, []string{"b1"}, lex.Synonyms("a1"))

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
