package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// refAttrs maps element names to the attribute that may carry a local
// reference. Media elements, srcset, CSS url() and script sources stay
// untouched.
var refAttrs = map[string]string{
	"img": "src",
	"a":   "href",
}

// ResolveLocalRefs converts relative image and link references into
// absolute file:// URLs, so the print engine can load them even though
// the exported HTML sits in a temporary directory. References resolve
// against baseDir, the directory of the source document. rootDir bounds
// resolution: a reference climbing above it keeps its original value.
// An empty baseDir leaves the HTML unchanged; an empty rootDir bounds
// at baseDir.
//
// Anchors, absolute paths, protocol-relative URLs, and anything with a
// scheme already resolve on their own and are never touched.
func ResolveLocalRefs(htmlContent, baseDir, rootDir string) (string, error) {
	if baseDir == "" {
		return htmlContent, nil
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", baseDir, err)
	}
	absRoot := absBase
	if rootDir != "" {
		if absRoot, err = filepath.Abs(rootDir); err != nil {
			return "", fmt.Errorf("resolving %s: %w", rootDir, err)
		}
	}

	doc, fragment, err := parseDoc(htmlContent)
	if err != nil {
		return "", err
	}
	resolveTree(doc, absBase, absRoot)
	return renderDoc(doc, fragment)
}

// parseDoc parses either a complete document or a body fragment. The
// fragment flag tells renderDoc to skip the implied html/body wrapper.
func parseDoc(content string) (*html.Node, bool, error) {
	head := strings.TrimSpace(content)
	if len(head) > len("<!doctype") {
		head = head[:len("<!doctype")]
	}
	head = strings.ToLower(head)
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, true, nil
}

func renderDoc(doc *html.Node, fragment bool) (string, error) {
	var buf strings.Builder
	if !fragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func resolveTree(n *html.Node, baseDir, rootDir string) {
	if n.Type == html.ElementNode {
		if attr, ok := refAttrs[n.Data]; ok {
			resolveAttr(n, attr, baseDir, rootDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveTree(c, baseDir, rootDir)
	}
}

func resolveAttr(n *html.Node, name, baseDir, rootDir string) {
	for i, attr := range n.Attr {
		if attr.Key != name || !isLocalRef(attr.Val) {
			continue
		}
		target := filepath.Join(baseDir, attr.Val)
		if !underRoot(target, rootDir) {
			continue
		}
		n.Attr[i].Val = fileURL(target)
	}
}

// isLocalRef reports whether ref points into the local tree. A scheme
// of any kind, including mailto and data, means the reference resolves
// without help.
func isLocalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref)
}

// underRoot guards against references escaping the export tree.
func underRoot(target, root string) bool {
	rel, err := filepath.Rel(root, filepath.Clean(target))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// fileURL renders an absolute filesystem path as a file:// URL,
// percent-encoding path segments the browser would misread.
func fileURL(target string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(target)}
	return u.String()
}
