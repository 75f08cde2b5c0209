package domain

import "go.trai.ch/zerr"

// Workspace is the loaded configuration plus the ordered unit list.
type Workspace struct {
	Root   string
	Config *Config
	Units  []BuildUnit
}

// Unit returns the unit with the given name.
func (w *Workspace) Unit(name string) (*BuildUnit, error) {
	for i := range w.Units {
		if w.Units[i].Name == name {
			return &w.Units[i], nil
		}
	}
	return nil, zerr.With(zerr.Wrap(ErrUnitNotFound, name), "unit", name)
}

// Validate checks that every name refers to a known unit.
func (w *Workspace) Validate(names ...string) error {
	for _, n := range names {
		if _, err := w.Unit(n); err != nil {
			return err
		}
	}
	return nil
}
