package dom

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"materi/internal/app/errors"
)

// Container ids the view renders into
const (
	ContentID      = "content"
	CourseDetailID = "course-detail"
)

const skeleton = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title></head>` +
	`<body><main id="` + ContentID + `"></main></body></html>`

// Document is a parsed HTML page that fragments are swapped into, safe for concurrent use
type Document struct {
	root *html.Node
	mu   sync.Mutex
}

// New creates a document with an empty content container
func New(title string) *Document {
	doc, err := Parse(fmt.Sprintf(skeleton, html.EscapeString(title)))
	if err != nil {
		panic(err)
	}

	return doc
}

// Parse builds a document from markup
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseHTML, err)
	}

	return &Document{root: root}, nil
}

// ReplaceInner swaps the children of the element with id for fragment, false if the element is absent
func (d *Document) ReplaceInner(id, fragment string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	target := Find(d.root, ByID(id))
	if target == nil {
		return false, nil
	}

	nodes, err := parseFragment(fragment, target)
	if err != nil {
		return false, err
	}

	RemoveChildren(target)

	for _, n := range nodes {
		target.AppendChild(n)
	}

	return true, nil
}

// ReplaceDetail swaps the first element inside the course detail column for fragment, false if absent
func (d *Document) ReplaceDetail(fragment string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	column := Find(d.root, ByID(CourseDetailID))
	if column == nil {
		return false, nil
	}

	pane := FirstElementChild(column)
	if pane == nil {
		return false, nil
	}

	nodes, err := parseFragment(fragment, column)
	if err != nil {
		return false, err
	}

	for _, n := range nodes {
		column.InsertBefore(n, pane)
	}

	column.RemoveChild(pane)

	return true, nil
}

// AppendBody parses fragment and appends it to the body
func (d *Document) AppendBody(fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := Find(d.root, ByTag("body"))
	if body == nil {
		return errors.ErrContainerNotFound
	}

	nodes, err := parseFragment(fragment, body)
	if err != nil {
		return err
	}

	for _, n := range nodes {
		body.AppendChild(n)
	}

	return nil
}

// Remove detaches the element with id, false if it is absent
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := Find(d.root, ByID(id))
	if n == nil || n.Parent == nil {
		return false
	}

	n.Parent.RemoveChild(n)

	return true
}

// Update runs fn with exclusive access to the tree
func (d *Document) Update(fn func(root *html.Node)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn(d.root)
}

// Exists reports whether an element with id is present
func (d *Document) Exists(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Find(d.root, ByID(id)) != nil
}

// HTML renders the whole document
func (d *Document) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}

	return buf.String()
}

// InnerHTML renders the children of the element with id
func (d *Document) InnerHTML(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := Find(d.root, ByID(id))
	if n == nil {
		return "", false
	}

	return renderChildren(n), true
}

// OuterHTML renders every element matched by match, concatenated
func (d *Document) OuterHTML(match func(*html.Node) bool) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf bytes.Buffer
	for _, n := range FindAll(d.root, match) {
		_ = html.Render(&buf, n)
	}

	return buf.String()
}

func parseFragment(fragment string, context *html.Node) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     context.Data,
		DataAtom: context.DataAtom,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseHTML, err)
	}

	return nodes, nil
}

func renderChildren(n *html.Node) string {
	var buf bytes.Buffer

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}

	return buf.String()
}
