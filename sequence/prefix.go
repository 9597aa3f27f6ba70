package sequence

import "strconv"

// Namespace is a namespace URI bound to a prefix.
type Namespace struct {
	URI    string
	Prefix string
}

var common = map[string]string{
	"http://www.w3.org/XML/1998/namespace": "xml",
	"http://www.w3.org/1999/xhtml":         "xhtml",
	"http://www.w3.org/1999/xlink":         "xlink",
	"http://www.w3.org/2000/svg":           "svg",
	"http://www.w3.org/1998/Math/MathML":   "mathml",
}

// PrefixMapping maps namespace URIs to unique prefixes, in registration
// order.
type PrefixMapping struct {
	byURI    map[string]int
	byPrefix map[string]int
	list     []Namespace
}

func NewPrefixMapping() *PrefixMapping {
	return &PrefixMapping{byURI: map[string]int{}, byPrefix: map[string]int{}}
}

// Add registers uri with prefix. The first registration of a URI wins and
// Add reports false for later ones. If prefix is already bound to another
// URI a counter is appended to it; an empty prefix that is taken becomes a
// well known prefix for the URI or "ns<N>".
func (m *PrefixMapping) Add(uri, prefix string) bool {
	if _, ok := m.byURI[uri]; ok {
		return false
	}
	actual := prefix
	for count := 0; m.taken(actual); count++ {
		actual = autoprefix(uri, prefix, count)
	}
	m.byURI[uri] = len(m.list)
	m.byPrefix[actual] = len(m.list)
	m.list = append(m.list, Namespace{URI: uri, Prefix: actual})
	return true
}

func (m *PrefixMapping) taken(prefix string) bool {
	_, ok := m.byPrefix[prefix]
	return ok
}

func autoprefix(uri, prefix string, count int) string {
	if prefix == "" {
		if p, ok := common[uri]; ok {
			if count == 0 {
				return p
			}
			return p + strconv.Itoa(count)
		}
		return "ns" + strconv.Itoa(count)
	}
	return prefix + strconv.Itoa(count)
}

// Prefix returns the prefix bound to uri.
func (m *PrefixMapping) Prefix(uri string) (string, bool) {
	i, ok := m.byURI[uri]
	if !ok {
		return "", false
	}
	return m.list[i].Prefix, true
}

// URI returns the namespace bound to prefix.
func (m *PrefixMapping) URI(prefix string) (string, bool) {
	i, ok := m.byPrefix[prefix]
	if !ok {
		return "", false
	}
	return m.list[i].URI, true
}

func (m *PrefixMapping) Len() int { return len(m.list) }

// Namespaces returns the registered namespaces in registration order.
func (m *PrefixMapping) Namespaces() []Namespace {
	res := make([]Namespace, len(m.list))
	copy(res, m.list)
	return res
}

// Merge adds every namespace of o, keeping existing bindings.
func (m *PrefixMapping) Merge(o *PrefixMapping) {
	for _, ns := range o.list {
		m.Add(ns.URI, ns.Prefix)
	}
}
