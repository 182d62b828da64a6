package dom

import "reflect"

// Annotation is metadata a tool attached to a node. It never reaches the
// built syntax.
type Annotation struct {
	Name   string
	Values map[string]any
}

// Annotations is an ordered set of annotations keyed by name. The zero value
// is empty and ready to use.
type Annotations struct {
	items []Annotation
}

// Add stores an annotation, replacing any earlier one with the same name in
// place.
func (a *Annotations) Add(name string, values map[string]any) {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	for i := range a.items {
		if a.items[i].Name == name {
			a.items[i].Values = copied
			return
		}
	}
	a.items = append(a.items, Annotation{Name: name, Values: copied})
}

func (a *Annotations) Get(name string) (Annotation, bool) {
	for _, item := range a.items {
		if item.Name == name {
			return item, true
		}
	}
	return Annotation{}, false
}

// Value returns one value of a named annotation.
func (a *Annotations) Value(name, key string) (any, bool) {
	item, ok := a.Get(name)
	if !ok {
		return nil, false
	}
	v, ok := item.Values[key]
	return v, ok
}

func (a *Annotations) Remove(name string) bool {
	for i, item := range a.items {
		if item.Name == name {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Annotations) Len() int {
	return len(a.items)
}

func (a *Annotations) All() []Annotation {
	return append([]Annotation(nil), a.items...)
}

// SameIntent reports whether both sets hold the same annotations with equal
// values. The order annotations were added in does not matter.
func (a *Annotations) SameIntent(other *Annotations) bool {
	if a.Len() != other.Len() {
		return false
	}
	for _, mine := range a.items {
		theirs, ok := other.Get(mine.Name)
		if !ok || !reflect.DeepEqual(mine.Values, theirs.Values) {
			return false
		}
	}
	return true
}

func (a *Annotations) clone() Annotations {
	var c Annotations
	for _, item := range a.items {
		c.Add(item.Name, item.Values)
	}
	return c
}
