package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderers write extracted pages in one output format
var renderers = map[string]func(io.Writer, []page) error{
	"text": renderText,
	"html": renderHTML,
	"json": renderJSON,
}

// renderText separates pages with a form feed
func renderText(w io.Writer, pages []page) error {
	for i, p := range pages {
		if i > 0 {
			if _, err := io.WriteString(w, "\f"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, p.Text); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, pages []page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pages)
}

// renderHTML writes one section per page and one paragraph per block of
// lines separated by blank lines.
func renderHTML(w io.Writer, pages []page) error {
	body := element(atom.Body)

	for _, p := range pages {
		section := element(atom.Section)
		section.Attr = []html.Attribute{{Key: "data-path", Val: p.Path}}

		for _, block := range strings.Split(p.Text, "\n\n") {
			if block == "" {
				continue
			}

			para := element(atom.P)
			for i, line := range strings.Split(block, "\n") {
				if i > 0 {
					para.AppendChild(element(atom.Br))
				}
				para.AppendChild(&html.Node{Type: html.TextNode, Data: line})
			}
			section.AppendChild(para)
		}

		body.AppendChild(section)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
