package prd

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseBody splits the markdown body into heading-delimited sections.
// Prose before the first heading is dropped, matching the frontmatter-first
// shape of PRD files. Content is reduced to plain text.
func parseBody(src []byte) []Section {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var sections []Section
	var current *Section
	var buf bytes.Buffer

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(buf.String())
		sections = append(sections, *current)
		buf.Reset()
		current = nil
	}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if h, ok := node.(*ast.Heading); ok {
			flush()
			current = &Section{
				Heading: nodeText(src, h),
				Level:   h.Level,
			}
			continue
		}
		if current == nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(nodeText(src, node))
	}
	flush()

	return sections
}

// nodeText extracts the plain text of a node, joining nested blocks with
// newlines.
func nodeText(src []byte, n ast.Node) string {
	var buf bytes.Buffer
	writeNodeText(src, n, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func writeNodeText(src []byte, n ast.Node, buf *bytes.Buffer) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(t.Segment.Value(src))
		if t.SoftLineBreak() || t.HardLineBreak() {
			buf.WriteString("\n")
		}
		return
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		writeNodeText(src, child, buf)
		// Separate block-level children (list items, nested paragraphs).
		if child.Type() == ast.TypeBlock {
			buf.WriteString("\n")
		}
	}
}
