package entity

import "fmt"

// Relationship is a directed edge from one entity to another, labelled with the
// relationship name it was declared under (e.g. "categories").
type Relationship struct {
	Name string   `json:"name"`
	From Identity `json:"from"`
	To   Identity `json:"to"`
}

func (r Relationship) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", r.From, r.Name, r.To)
}

// Filter returns the relationships matching pred, preserving order.
func Filter(relationships []Relationship, pred func(Relationship) bool) []Relationship {
	var out []Relationship
	for _, rel := range relationships {
		if pred(rel) {
			out = append(out, rel)
		}
	}
	return out
}

// FirstFrom returns the first relationship named name whose From is subject and whose
// To has the given kind.
func FirstFrom(relationships []Relationship, subject Identity, name string, to Kind) (Relationship, bool) {
	for _, rel := range relationships {
		if rel.From == subject && rel.Name == name && rel.To.Kind == to {
			return rel, true
		}
	}
	return Relationship{}, false
}

// FirstTo returns the first relationship pointing at subject from an entity of the
// given kind.
func FirstTo(relationships []Relationship, subject Identity, from Kind) (Relationship, bool) {
	for _, rel := range relationships {
		if rel.To == subject && rel.From.Kind == from {
			return rel, true
		}
	}
	return Relationship{}, false
}
