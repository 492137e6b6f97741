// Package timewise turns a score-partwise document into its score-timewise
// equivalent: measures on the outside, parts inside each measure.
package timewise

import (
	"github.com/jsphweid/cochonut/xmltree"
	"github.com/pkg/errors"
)

const (
	PartwiseTag = "score-partwise"
	TimewiseTag = "score-timewise"
)

// Convert rebuilds a partwise tree as a timewise one. Header elements are
// kept in place. Measures follow the order of the first part; every other
// part contributes its measure with the same number, and is left out of
// measures it does not have. The input tree is not modified.
func Convert(root *xmltree.Node) (*xmltree.Node, error) {
	if root.Tag != PartwiseTag {
		return nil, errors.Errorf("expected %v, got %v", PartwiseTag, root.Tag)
	}

	res := &xmltree.Node{Tag: TimewiseTag, Attrs: root.Attrs}
	var parts []*xmltree.Node
	for _, child := range root.Children {
		if child.Tag == "part" {
			if _, ok := child.Attr("id"); !ok {
				return nil, errors.New("part without id")
			}
			parts = append(parts, child)
			continue
		}
		res.Children = append(res.Children, child)
	}
	if len(parts) == 0 {
		return res, nil
	}

	// measures of each part by number, consumed in order so repeated numbers
	// pair up positionally
	pending := make([]map[string][]*xmltree.Node, len(parts))
	for i, part := range parts {
		pending[i] = make(map[string][]*xmltree.Node)
		for _, m := range part.FindAll("measure") {
			number, _ := m.Attr("number")
			pending[i][number] = append(pending[i][number], m)
		}
	}

	for _, first := range parts[0].FindAll("measure") {
		number, _ := first.Attr("number")
		measure := &xmltree.Node{Tag: "measure", Attrs: first.Attrs}
		for i, part := range parts {
			queue := pending[i][number]
			if len(queue) == 0 {
				continue
			}
			m := queue[0]
			pending[i][number] = queue[1:]
			measure.Children = append(measure.Children, &xmltree.Node{
				Tag:      "part",
				Attrs:    part.Attrs,
				Children: m.Children,
			})
		}
		res.Children = append(res.Children, measure)
	}
	return res, nil
}
