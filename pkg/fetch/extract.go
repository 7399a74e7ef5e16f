package fetch

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML to markdown conversion shared by the local engines. This is a main
// content extractor, not a general converter: boilerplate regions are pruned
// before rendering.

var multiBlank = regexp.MustCompile(`\n{3,}`)

// prunedTags are dropped with their whole subtree during rendering.
var prunedTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Nav:      true,
	atom.Header:   true,
	atom.Footer:   true,
	atom.Aside:    true,
	atom.Form:     true,
	atom.Iframe:   true,
	atom.Svg:      true,
	atom.Button:   true,
}

// ExtractMarkdown parses an HTML page and renders its main content as
// markdown. It also returns the page title and meta description.
func ExtractMarkdown(htmlSrc string) (markdown, title, description string, err error) {
	doc, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return "", "", "", err
	}

	title = textOf(findFirst(doc, atom.Title))
	description = metaDescription(doc)

	// Prefer an explicit main content region when the page declares one.
	body := findFirst(doc, atom.Main)
	if body == nil {
		body = findFirst(doc, atom.Article)
	}
	if body == nil {
		body = findFirst(doc, atom.Body)
	}
	if body == nil {
		body = doc
	}

	var sb strings.Builder
	render(&sb, body)
	markdown = strings.TrimSpace(multiBlank.ReplaceAllString(sb.String(), "\n\n"))
	return markdown, title, description, nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func metaDescription(doc *html.Node) string {
	head := findFirst(doc, atom.Head)
	if head == nil {
		return ""
	}
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Meta {
			continue
		}
		if attr(c, "name") == "description" || attr(c, "property") == "og:description" {
			if v := strings.TrimSpace(attr(c, "content")); v != "" {
				return v
			}
		}
	}
	return ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func render(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
		if prunedTags[n.DataAtom] {
			return
		}
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		sb.WriteString("\n\n" + strings.Repeat("#", level) + " " + textOf(n) + "\n\n")
		return
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Table, atom.Figure:
		sb.WriteString("\n\n")
	case atom.Br:
		sb.WriteString("\n")
		return
	case atom.Hr:
		sb.WriteString("\n\n---\n\n")
		return
	case atom.Li:
		sb.WriteString("\n- ")
	case atom.Blockquote:
		sb.WriteString("\n\n> " + textOf(n) + "\n\n")
		return
	case atom.Pre:
		sb.WriteString("\n\n```\n" + rawText(n) + "\n```\n\n")
		return
	case atom.Code:
		sb.WriteString("`" + textOf(n) + "`")
		return
	case atom.Strong, atom.B:
		sb.WriteString("**" + textOf(n) + "**")
		return
	case atom.Em, atom.I:
		sb.WriteString("*" + textOf(n) + "*")
		return
	case atom.A:
		text := textOf(n)
		href := attr(n, "href")
		if text == "" {
			return
		}
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			sb.WriteString(text)
		} else {
			sb.WriteString("[" + text + "](" + href + ")")
		}
		return
	case atom.Img:
		src := attr(n, "src")
		if src == "" {
			return
		}
		sb.WriteString("![" + attr(n, "alt") + "](" + src + ")")
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(sb, c)
	}

	switch n.DataAtom {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Table, atom.Figure, atom.Ul, atom.Ol:
		sb.WriteString("\n\n")
	}
}

// rawText preserves whitespace for code blocks.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Trim(sb.String(), "\n")
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if strings.ContainsAny(s, " \t\n") {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if s[0] == ' ' || s[0] == '\n' || s[0] == '\t' {
		out = " " + out
	}
	if last := s[len(s)-1]; last == ' ' || last == '\n' || last == '\t' {
		out += " "
	}
	return out
}
