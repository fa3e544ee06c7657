package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyn-dev/moyn-cli/internal/document"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

func TestParseWithoutFrontmatterKeepsWholeFile(t *testing.T) {
	inputs := []string{
		"",
		"plain text only\n",
		"# Heading\n\nSome body with --- inside.\n",
		"Intro\n---\nnot metadata because it is not the first line\n",
		"----\nfour dashes are a rule\n----\n",
		"  ---\ntitle: X\n---\nbody\n",
		"\t---\ntitle: X\n---\nbody\n",
		"--- \ntitle: X\n---\nbody\n",
	}
	for _, input := range inputs {
		doc, err := document.Parse("note.md", []byte(input))
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, doc.Body)
		assert.False(t, doc.HasFrontmatter)
		assert.Nil(t, doc.Frontmatter.Title)
		assert.Nil(t, doc.Frontmatter.Published)
		assert.Nil(t, doc.Frontmatter.Tags)
		assert.Nil(t, doc.Frontmatter.Slug)
		assert.Nil(t, doc.Frontmatter.Space)
		assert.False(t, doc.Published())
		assert.Empty(t, doc.Tags())
		_, hasSlug := doc.Slug()
		assert.False(t, hasSlug)
		_, hasSpace := doc.Space()
		assert.False(t, hasSpace)
	}
}

func TestFrontmatterTitleWins(t *testing.T) {
	bodies := []string{
		"# Some Other Heading\n\ntext\n",
		"no heading at all\n",
		"",
	}
	for _, body := range bodies {
		input := "---\ntitle: \"X\"\n---\n" + body
		doc, err := document.Parse("fallback-name.md", []byte(input))
		require.NoError(t, err)
		assert.Equal(t, "X", doc.Title)
		assert.Equal(t, document.TitleFromFrontmatter, doc.TitleSource)
		assert.Equal(t, body, doc.Body)
	}
}

func TestHeadingTitleFallback(t *testing.T) {
	input := "Intro paragraph.\n\n## Second level first\n\n# Heading\n\n# Later Heading\n"
	doc, err := document.Parse("file.md", []byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Heading", doc.Title)
	assert.Equal(t, document.TitleFromHeading, doc.TitleSource)
}

func TestHeadingTitleWithFrontmatterWithoutTitle(t *testing.T) {
	input := "---\npublished: true\n---\n# Heading\n"
	doc, err := document.Parse("file.md", []byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Heading", doc.Title)
	assert.True(t, doc.Published())
}

func TestHeadingInsideCodeBlockIgnored(t *testing.T) {
	input := "```sh\n# not a heading\n```\n\n# Real Title\n"
	doc, err := document.Parse("file.md", []byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Real Title", doc.Title)
}

func TestHeadingWithInlineMarkup(t *testing.T) {
	doc, err := document.Parse("file.md", []byte("# Using `go test` with *style*\n"))
	require.NoError(t, err)
	assert.Equal(t, "Using go test with style", doc.Title)
}

func TestFilenameTitleFallback(t *testing.T) {
	doc, err := document.Parse("my-first-post.md", []byte("just words\n"))
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", doc.Title)
	assert.Equal(t, document.TitleFromFilename, doc.TitleSource)

	doc, err = document.Parse("archive.tar.md", []byte("---\ntags: [a]\n---\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "archive.tar", doc.Title)

	doc, err = document.Parse("", []byte("body"))
	require.NoError(t, err)
	assert.Equal(t, "Untitled", doc.Title)
}

func TestEmptyFrontmatterTitleFallsThrough(t *testing.T) {
	doc, err := document.Parse("name.md", []byte("---\ntitle: \"  \"\n---\n# From Heading\n"))
	require.NoError(t, err)
	assert.Equal(t, "From Heading", doc.Title)
}

func TestFrontmatterFields(t *testing.T) {
	input := "\n\n---\ntitle: Hello\npublished: true\ntags:\n  - rust\n  - cli\n  - rust\n  - \"  \"\nslug: hello-world\nspace: team-notes\nauthor: ignored\n---\n\n\nBody text\n"
	doc, err := document.Parse("hello.md", []byte(input))
	require.NoError(t, err)

	assert.True(t, doc.HasFrontmatter)
	assert.Equal(t, "Hello", doc.Title)
	assert.True(t, doc.Published())
	assert.Equal(t, []string{"rust", "cli"}, doc.Tags())
	slug, ok := doc.Slug()
	assert.True(t, ok)
	assert.Equal(t, "hello-world", slug)
	space, ok := doc.Space()
	assert.True(t, ok)
	assert.Equal(t, "team-notes", space)
	assert.Equal(t, "Body text\n", doc.Body)
}

func TestFrontmatterClosesOnlyOnExactDelimiter(t *testing.T) {
	cases := map[string]struct {
		input string
		title string
		body  string
	}{
		"indented dashes in block scalar": {
			input: "---\ntitle: X\nnote: |\n  ---\n---\nbody\n",
			title: "X",
			body:  "body\n",
		},
		"indented closer is metadata": {
			input: "---\ntitle: Y\nnote: >\n  a\n  ---\n  b\n---\n\nbody\n",
			title: "Y",
			body:  "body\n",
		},
		"crlf line endings": {
			input: "---\r\ntitle: Z\r\n---\r\nbody\r\n",
			title: "Z",
			body:  "body\r\n",
		},
		"closer at end of file": {
			input: "---\ntitle: End\n---",
			title: "End",
			body:  "",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := document.Parse("f.md", []byte(tc.input))
			require.NoError(t, err)
			assert.True(t, doc.HasFrontmatter)
			assert.Equal(t, tc.title, doc.Title)
			assert.Equal(t, tc.body, doc.Body)
		})
	}
}

func TestIndentedCloserLeavesBlockUnclosed(t *testing.T) {
	_, err := document.Parse("f.md", []byte("---\ntitle: X\n  ---\nbody\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrParse)
}

func TestPublishedFalseWhenExplicit(t *testing.T) {
	doc, err := document.Parse("a.md", []byte("---\npublished: false\n---\nbody\n"))
	require.NoError(t, err)
	require.NotNil(t, doc.Frontmatter.Published)
	assert.False(t, doc.Published())
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unclosed":           "---\ntitle: Open\nbody without closing\n",
		"only opener":        "---",
		"tags not a list":    "---\ntags: rust\n---\nbody\n",
		"published not bool": "---\npublished: sometimes\n---\nbody\n",
		"title is a list":    "---\ntitle: [a, b]\n---\nbody\n",
		"invalid yaml":       "---\ntitle: [unterminated\n---\nbody\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := document.Parse("bad.md", []byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrParse)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weekly-notes.md")
	require.NoError(t, os.WriteFile(path, []byte("Nothing but text.\n"), 0o644))

	doc, err := document.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "weekly-notes", doc.Title)
	assert.Equal(t, "weekly-notes.md", doc.Filename)

	_, err = document.LoadFile(filepath.Join(dir, "missing.md"))
	assert.ErrorIs(t, err, services.ErrParse)
}
