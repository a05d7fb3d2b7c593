package importer

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"worldforge/internal/entity"
)

// frontMatter is the optional YAML header of an imported file.
type frontMatter struct {
	Kind     string   `yaml:"kind"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Type     string   `yaml:"type"`
	Tags     []string `yaml:"tags"`
}

// Document is a parsed markdown file ready to become a note or lore entry.
type Document struct {
	Kind     entity.Kind
	Title    string
	Category string
	Tags     []string
	Body     string
}

// Entity converts the document into the variant its kind names.
func (d Document) Entity() entity.Entity {
	if d.Kind == entity.KindLore {
		return &entity.LoreEntry{Title: d.Title, Content: d.Body, Category: d.Category, Tags: d.Tags}
	}
	return &entity.Note{Title: d.Title, Content: d.Body, Type: d.Category}
}

var md = goldmark.New()

// Parse reads a markdown file. Front matter may set kind (note or lore),
// title, category or type, and tags. Without a title the first level-1
// heading is used, then the first level-2 heading, then the file name.
// Without a category the last folder of relPath is used.
func Parse(content []byte, relPath string) (Document, error) {
	fm, body, err := splitFrontMatter(content)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Kind: entity.KindNote, Body: strings.TrimSpace(string(body))}
	if fm.Kind != "" {
		kind, err := entity.ParseKind(fm.Kind)
		if err != nil {
			return Document{}, err
		}
		if kind != entity.KindNote && kind != entity.KindLore {
			return Document{}, fmt.Errorf("kind %q cannot be imported from markdown", kind)
		}
		doc.Kind = kind
	}

	doc.Title = strings.TrimSpace(fm.Title)
	if doc.Title == "" {
		doc.Title = headingTitle(body)
	}
	if doc.Title == "" {
		doc.Title = titleFromFilename(relPath)
	}

	doc.Category = strings.TrimSpace(fm.Category)
	if doc.Category == "" {
		doc.Category = strings.TrimSpace(fm.Type)
	}
	if doc.Category == "" {
		if dir := path.Dir(relPath); dir != "." {
			doc.Category = path.Base(dir)
		}
	}

	for _, tag := range fm.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			doc.Tags = append(doc.Tags, tag)
		}
	}
	return doc, nil
}

func splitFrontMatter(content []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	first, rest, ok := cutLine(content)
	if !ok || string(first) != "---" {
		return fm, content, nil
	}

	var header []byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		if string(line) == "---" {
			if err := yaml.Unmarshal(header, &fm); err != nil {
				return fm, nil, fmt.Errorf("invalid front matter: %w", err)
			}
			return fm, rest, nil
		}
		header = append(header, line...)
		header = append(header, '\n')
	}
	// unterminated: treat the whole file as body
	return frontMatter{}, content, nil
}

// cutLine splits off the first line, dropping its line ending. ok is false
// when content holds no line terminator.
func cutLine(content []byte) (line, rest []byte, ok bool) {
	line, rest, ok = bytes.Cut(content, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, ok
}

func headingTitle(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	root := md.Parser().Parse(text.NewReader(body))

	var h1, h2 string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		switch {
		case heading.Level == 1 && h1 == "":
			h1 = nodeText(heading, body)
			return ast.WalkStop, nil
		case heading.Level == 2 && h2 == "":
			h2 = nodeText(heading, body)
		}
		return ast.WalkSkipChildren, nil
	})

	if h1 != "" {
		return h1
	}
	return h2
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// titleFromFilename turns "the-sundering_war.md" into "The Sundering War".
func titleFromFilename(relPath string) string {
	name := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
