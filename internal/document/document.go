package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/moyn-dev/moyn-cli/internal/services"
)

// Delimiter opens and closes the metadata block at the top of a file.
const Delimiter = "---"

// untitled is used when neither metadata, headings, nor the filename yield a title.
const untitled = "Untitled"

// TitleSource records where a document's effective title came from.
type TitleSource string

const (
	TitleFromFrontmatter TitleSource = "frontmatter"
	TitleFromHeading     TitleSource = "heading"
	TitleFromFilename    TitleSource = "filename"
)

// Frontmatter holds the recognized metadata keys. Pointer fields are nil when
// the key was not present.
type Frontmatter struct {
	Title     *string  `yaml:"title"`
	Published *bool    `yaml:"published"`
	Tags      []string `yaml:"tags"`
	Slug      *string  `yaml:"slug"`
	Space     *string  `yaml:"space"`
}

// Document is a parsed markdown source file.
type Document struct {
	Filename       string
	HasFrontmatter bool
	Frontmatter    Frontmatter
	Body           string
	Title          string
	TitleSource    TitleSource

	tags []string
	slug string
}

// Published reports the frontmatter published flag; absent means false.
func (d *Document) Published() bool {
	return d.Frontmatter.Published != nil && *d.Frontmatter.Published
}

// Tags returns the de-duplicated, non-blank tags in first-seen order.
func (d *Document) Tags() []string {
	return append([]string(nil), d.tags...)
}

// Slug returns the normalized slug when one was given.
func (d *Document) Slug() (string, bool) {
	return d.slug, d.slug != ""
}

// Space returns the target space slug when one was given.
func (d *Document) Space() (string, bool) {
	if d.Frontmatter.Space == nil {
		return "", false
	}
	space := strings.TrimSpace(*d.Frontmatter.Space)
	return space, space != ""
}

// LoadFile reads and parses the markdown file at path.
func LoadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "document", "read", path, err)
	}
	return Parse(filepath.Base(path), content)
}

// Parse splits content into its optional metadata block and markdown body
// and derives the effective title. Without a metadata block the body is the
// whole content, unchanged.
func Parse(filename string, content []byte) (*Document, error) {
	doc := &Document{Filename: filename, Body: string(content)}

	meta, body, opened, closed := splitBlock(doc.Body)
	if opened {
		if !closed {
			return nil, services.Wrap(services.ErrParse, "document", "frontmatter", fmt.Sprintf("%s: metadata block opened but never closed", filename), nil)
		}
		if err := yaml.Unmarshal([]byte(meta), &doc.Frontmatter); err != nil {
			return nil, services.Wrap(services.ErrParse, "document", "frontmatter", filename, err)
		}
		doc.HasFrontmatter = true
		doc.Body = strings.TrimLeft(body, "\r\n")
	}

	if err := doc.normalizeMetadata(); err != nil {
		return nil, err
	}
	doc.Title, doc.TitleSource = deriveTitle(doc)
	return doc, nil
}

// splitBlock locates the metadata block at the top of content. Blank lines
// before the opener are skipped. Opener and closer must be exactly Delimiter
// at column zero; only a trailing carriage return is tolerated.
func splitBlock(content string) (meta, body string, opened, closed bool) {
	rest := content
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimSpace(line) != "" {
			break
		}
		if !more {
			return "", "", false, false
		}
		rest = next
	}

	first, after, _ := strings.Cut(rest, "\n")
	if !isDelimiter(first) {
		return "", "", false, false
	}

	for pos := 0; pos < len(after); {
		line, next := after[pos:], len(after)
		if end := strings.IndexByte(line, '\n'); end >= 0 {
			line, next = line[:end], pos+end+1
		}
		if isDelimiter(line) {
			return after[:pos], after[next:], true, true
		}
		pos = next
	}
	return "", "", true, false
}

func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == Delimiter
}

func (d *Document) normalizeMetadata() error {
	if d.Frontmatter.Tags != nil {
		d.tags = lo.Uniq(lo.Compact(lo.Map(d.Frontmatter.Tags, func(tag string, _ int) string {
			return strings.TrimSpace(tag)
		})))
	}
	if d.Frontmatter.Slug != nil {
		raw := strings.TrimSpace(*d.Frontmatter.Slug)
		if raw == "" {
			return nil
		}
		normalized, err := slug.Normalize(raw)
		if err != nil || normalized == "" {
			return services.Wrap(services.ErrParse, "document", "frontmatter", fmt.Sprintf("%s: invalid slug %q", d.Filename, raw), err)
		}
		d.slug = normalized
	}
	return nil
}

func deriveTitle(d *Document) (string, TitleSource) {
	if d.Frontmatter.Title != nil {
		if title := cleanTitle(*d.Frontmatter.Title); title != "" {
			return title, TitleFromFrontmatter
		}
	}
	if heading := cleanTitle(firstHeading([]byte(d.Body))); heading != "" {
		return heading, TitleFromHeading
	}
	return filenameTitle(d.Filename), TitleFromFilename
}

func filenameTitle(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	stem := cleanTitle(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return untitled
	}
	return stem
}

func cleanTitle(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
