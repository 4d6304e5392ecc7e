package xmlcodec

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Namespaces maps namespace URIs to the prefixes used when writing.
type Namespaces map[string]string

type writeOptions struct {
	namespaces  Namespaces
	prefix      string
	indent      string
	declaration bool
}

// WriteOption configures Write and Marshal.
type WriteOption func(*writeOptions)

// WithNamespaces sets the URI to prefix map. Namespaces missing from the map
// get generated prefixes.
func WithNamespaces(ns Namespaces) WriteOption {
	return func(o *writeOptions) {
		o.namespaces = ns
	}
}

// WithIndent indents nested elements.
func WithIndent(prefix, indent string) WriteOption {
	return func(o *writeOptions) {
		o.prefix = prefix
		o.indent = indent
	}
}

// WithDeclaration emits the XML declaration before the root element.
func WithDeclaration() WriteOption {
	return func(o *writeOptions) {
		o.declaration = true
	}
}

// Marshal renders the tree as XML text.
func Marshal(n *Node, opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the tree to w. Every namespace used in the tree is declared
// on the root element.
func Write(w io.Writer, n *Node, opts ...WriteOption) error {
	if n == nil {
		return fmt.Errorf("xmlcodec: nil node")
	}
	o := &writeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	prefixes := assignPrefixes(n, o.namespaces)
	bw := bufio.NewWriter(w)
	if o.declaration {
		bw.WriteString(xml.Header)
	}
	ww := &treeWriter{w: bw, prefixes: prefixes, opts: o}
	ww.node(n, 0, true)
	if ww.err != nil {
		return ww.err
	}
	return bw.Flush()
}

func assignPrefixes(root *Node, known Namespaces) map[string]string {
	used := make(map[string]struct{})
	var walk func(*Node)
	walk = func(n *Node) {
		if ns := n.Namespace(); ns != "" {
			used[ns] = struct{}{}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	uris := make([]string, 0, len(used))
	for uri := range used {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	prefixes := make(map[string]string, len(uris))
	taken := make(map[string]struct{})
	for _, uri := range uris {
		if p, ok := known[uri]; ok {
			prefixes[uri] = p
			taken[p] = struct{}{}
		}
	}
	next := 1
	for _, uri := range uris {
		if _, ok := prefixes[uri]; ok {
			continue
		}
		for {
			p := fmt.Sprintf("ns%d", next)
			next++
			if _, clash := taken[p]; !clash {
				prefixes[uri] = p
				taken[p] = struct{}{}
				break
			}
		}
	}
	return prefixes
}

type treeWriter struct {
	w        *bufio.Writer
	prefixes map[string]string
	opts     *writeOptions
	err      error
}

func (t *treeWriter) node(n *Node, depth int, root bool) {
	if t.err != nil {
		return
	}
	name := t.name(n.Name)
	t.pad(depth)
	t.write("<" + name)
	if root {
		t.declare()
	}
	if n.IsEmpty() {
		t.write("/>")
		return
	}
	t.write(">")
	if !n.IsNested() {
		t.escape(n.Text)
		t.write("</" + name + ">")
		return
	}
	for _, c := range n.Children {
		t.newline()
		t.node(c, depth+1, false)
	}
	t.newline()
	t.pad(depth)
	t.write("</" + name + ">")
}

func (t *treeWriter) declare() {
	uris := make([]string, 0, len(t.prefixes))
	for uri := range t.prefixes {
		uris = append(uris, uri)
	}
	sort.Slice(uris, func(i, j int) bool { return t.prefixes[uris[i]] < t.prefixes[uris[j]] })
	for _, uri := range uris {
		t.write(fmt.Sprintf(` xmlns:%s="`, t.prefixes[uri]))
		t.escape(uri)
		t.write(`"`)
	}
}

func (t *treeWriter) name(clark string) string {
	ns, local := SplitName(clark)
	if ns == "" {
		return local
	}
	return t.prefixes[ns] + ":" + local
}

func (t *treeWriter) pad(depth int) {
	if t.opts.indent == "" && t.opts.prefix == "" {
		return
	}
	t.write(t.opts.prefix + strings.Repeat(t.opts.indent, depth))
}

func (t *treeWriter) newline() {
	if t.opts.indent == "" && t.opts.prefix == "" {
		return
	}
	t.write("\n")
}

func (t *treeWriter) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = t.w.WriteString(s)
}

func (t *treeWriter) escape(s string) {
	if t.err != nil {
		return
	}
	t.err = xml.EscapeText(t.w, []byte(s))
}
