package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Classes returns the class list of an element
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether the element carries class
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}

	return false
}

// AddClass appends classes that are not present yet
func AddClass(n *html.Node, classes ...string) {
	current := Classes(n)

	for _, c := range classes {
		if !HasClass(n, c) {
			current = append(current, c)
			SetAttr(n, "class", strings.Join(current, " "))
		}
	}
}

// RemoveClass drops classes from the element
func RemoveClass(n *html.Node, classes ...string) {
	drop := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		drop[c] = struct{}{}
	}

	current := Classes(n)
	kept := current[:0]

	for _, c := range current {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}

	SetAttr(n, "class", strings.Join(kept, " "))
}

// ToggleClass adds or removes classes depending on on
func ToggleClass(n *html.Node, on bool, classes ...string) {
	if on {
		AddClass(n, classes...)
	} else {
		RemoveClass(n, classes...)
	}
}

// Find returns the first node in document order for which match is true
func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}

	if match(root) {
		return root
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}

	return nil
}

// FindAll returns every node in document order for which match is true
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if root != nil {
		walk(root)
	}

	return out
}

// ByID matches the element with the given id
func ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}

		v, ok := Attr(n, "id")

		return ok && v == id
	}
}

// ByClass matches elements carrying class
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && HasClass(n, class)
	}
}

// ByTag matches elements with the given tag name
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// FirstElementChild returns the first child that is an element
func FirstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}

	return nil
}

// Text returns the concatenated text content of n
func Text(n *html.Node) string {
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

	return sb.String()
}

// SetText replaces all children of n with a single text node
func SetText(n *html.Node, text string) {
	RemoveChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// RemoveChildren detaches every child of n
func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}
