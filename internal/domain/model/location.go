package model

type Location struct {
	ID   LocationID
	Name string
}

func NewLocation(name string) *Location {
	return &Location{Name: name}
}

type LocationPatch struct {
	Name *string
}

func (p LocationPatch) IsEmpty() bool {
	return p.Name == nil
}

func (l *Location) Apply(patch LocationPatch) {
	if patch.Name != nil {
		l.Name = *patch.Name
	}
}
