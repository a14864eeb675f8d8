package svgplan

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// node is a generic element of the source document
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*node    `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// findGroup returns the first <g> with the given id in document order
func (n *node) findGroup(id string) *node {
	for _, child := range n.Children {
		if child.XMLName.Local == "g" && child.attr("id") == id {
			return child
		}
		if found := child.findGroup(id); found != nil {
			return found
		}
	}
	return nil
}

// childrenNamed returns the direct children with one of the given tag names
func (n *node) childrenNamed(tags ...string) []*node {
	var out []*node
	for _, child := range n.Children {
		for _, tag := range tags {
			if child.XMLName.Local == tag {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

// dimension parses a width/height attribute such as "800" or "800px".
// ok is false when the attribute is missing or not a plain length.
func dimension(value string) (float64, bool) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
