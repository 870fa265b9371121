// Package xfadata converts raw XFA form XML, as returned by the fitz
// binding, into structured JSON. It locates the form data section inside
// the XFA bundle and mirrors the element tree: attributes land under
// "_attributes", element text under "_value", and repeated sibling names
// become arrays. Leaf elements carrying only text collapse to plain
// strings.
package xfadata

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

const xfaDataNamespace = "http://www.xfa.org/schema/xfa-data/1.0/"

// node is a generic XML element tree. encoding/xml fills Space with the
// resolved namespace URI and Local with the prefix-free tag name.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Chardata string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// ToJSON converts XFA XML into pretty-printed JSON. With dataOnly set,
// metadata fields and large lookup lists are excluded so only user-entered
// form data remains.
func ToJSON(xmlData []byte, dataOnly bool) ([]byte, error) {
	var root node
	if err := xml.Unmarshal(xmlData, &root); err != nil {
		return nil, fmt.Errorf("xml parse error: %w", err)
	}

	dataNode := findDataSection(&root)
	if dataNode == nil {
		return nil, errors.New("could not locate form data section in xfa xml")
	}

	formData := make(map[string]any)
	for i := range dataNode.Children {
		child := &dataNode.Children[i]
		tagName := child.XMLName.Local

		if dataOnly && isMetadataField(tagName) {
			continue
		}

		value := elementToJSON(child)
		if value == nil {
			continue
		}
		if dataOnly && isLookupList(tagName, value) {
			continue
		}

		// The Form element wraps the actual fields; lookup lists nested
		// directly beneath it get the same treatment as top-level ones.
		if dataOnly && tagName == "Form" {
			if obj, ok := value.(map[string]any); ok {
				filtered := make(map[string]any, len(obj))
				for k, v := range obj {
					if !isLookupList(k, v) {
						filtered[k] = v
					}
				}
				if len(filtered) > 0 {
					mergeIntoMap(formData, tagName, filtered)
				}
				continue
			}
		}

		mergeIntoMap(formData, tagName, value)
	}

	if len(formData) == 0 {
		return nil, errors.New("no valid data found after extraction")
	}

	return json.MarshalIndent(formData, "", "  ")
}

// mergeIntoMap inserts a key, turning duplicate keys into arrays in
// encounter order.
func mergeIntoMap(m map[string]any, key string, value any) {
	existing, ok := m[key]
	if !ok {
		m[key] = value
		return
	}
	if arr, ok := existing.([]any); ok {
		m[key] = append(arr, value)
		return
	}
	m[key] = []any{existing, value}
}

// findDataSection prefers a namespace-qualified xfa data element or the
// datasets/data path, falling back to any element named "data".
func findDataSection(root *node) *node {
	if n := findData(root, "", true); n != nil {
		return n
	}
	return findData(root, "", false)
}

func findData(n *node, parentName string, strict bool) *node {
	if n.XMLName.Local == "data" {
		if !strict || n.XMLName.Space == xfaDataNamespace || parentName == "datasets" {
			return n
		}
	}
	for i := range n.Children {
		if found := findData(&n.Children[i], n.XMLName.Local, strict); found != nil {
			return found
		}
	}
	return nil
}

func elementToJSON(n *node) any {
	switch n.XMLName.Local {
	case "schema", "datamodel", "dataDescription":
		return nil
	}

	m := make(map[string]any)

	attrs := make(map[string]any)
	for _, attr := range n.Attrs {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		attrs[attr.Name.Local] = attr.Value
	}
	if len(attrs) > 0 {
		m["_attributes"] = attrs
	}

	if text := strings.TrimSpace(n.Chardata); text != "" {
		m["_value"] = text
	}

	hasChildren := false
	for i := range n.Children {
		child := &n.Children[i]
		hasChildren = true
		if value := elementToJSON(child); value != nil {
			mergeIntoMap(m, child.XMLName.Local, value)
		}
	}

	// A text-only leaf collapses to its string value.
	if !hasChildren && len(m) == 1 {
		if value, ok := m["_value"]; ok {
			return value
		}
	}

	if len(m) == 0 {
		return nil
	}
	return m
}

var metadataPrefixes = []string{
	"FS", "fs", "_", "TEMPLATE", "QUERY", "TRANSFORMATION",
	"template", "config", "xdp",
}

func isMetadataField(name string) bool {
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

var lookupPatterns = []string{
	"List", "Options", "Choices", "Lookup", "Reference",
	"Country", "Port", "State", "City", "Dropdown",
}

// isLookupList reports whether a value looks like a static lookup table: a
// suggestively named object holding an array of more than 10 entries.
func isLookupList(name string, value any) bool {
	matched := false
	for _, pattern := range lookupPatterns {
		if strings.Contains(name, pattern) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	for _, v := range obj {
		if arr, ok := v.([]any); ok && len(arr) > 10 {
			return true
		}
	}
	return false
}
