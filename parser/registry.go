package parser

import (
	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/xmltree"
	"github.com/pkg/errors"
)

// Registry owns the declared parts and their walk state for one parse.
type Registry struct {
	parts []*model.Part
	byID  map[string]*model.Part
}

// NewRegistry reads part-list/score-part. Every part starts with unset
// divisions and its cursor at 0.
func NewRegistry(root *xmltree.Node) (*Registry, error) {
	partList := root.Child("part-list")
	if partList == nil {
		return nil, errors.Wrap(ErrMalformed, "missing part-list")
	}

	r := &Registry{byID: make(map[string]*model.Part)}
	for _, sp := range partList.FindAll("score-part") {
		id, ok := sp.Attr("id")
		if !ok {
			return nil, errors.Wrap(ErrMalformed, "score-part without id")
		}
		if _, dup := r.byID[id]; dup {
			return nil, errors.Wrapf(ErrMalformed, "part %v declared twice", id)
		}
		name := sp.Child("part-name")
		if name == nil {
			return nil, errors.Wrapf(ErrMalformed, "part %v has no part-name", id)
		}
		p := &model.Part{ID: id, Name: name.Text}
		r.parts = append(r.parts, p)
		r.byID[id] = p
	}
	return r, nil
}

func (r *Registry) Lookup(id string) (*model.Part, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPart, "part %v", id)
	}
	return p, nil
}

func (r *Registry) SetDivisions(id string, divisions int) error {
	p, err := r.Lookup(id)
	if err != nil {
		return err
	}
	p.Divisions = divisions
	return nil
}

// Divisions returns the current divisions of a part, failing when no
// divisions element has been seen for it yet.
func (r *Registry) Divisions(id string) (int, error) {
	p, err := r.Lookup(id)
	if err != nil {
		return 0, err
	}
	if p.Divisions == 0 {
		return 0, errors.Wrapf(ErrMissingDivisions, "part %v", id)
	}
	return p.Divisions, nil
}

// Parts returns a snapshot of every part in part-list order.
func (r *Registry) Parts() []model.Part {
	res := make([]model.Part, 0, len(r.parts))
	for _, p := range r.parts {
		res = append(res, *p)
	}
	return res
}
