package controllers

// Selection identifies the sighting loaded in the form, if any. It is a
// value: callers pass the selection they acted on into Update and Delete.
type Selection struct {
	id  int64
	set bool
}

// NoSelection is the empty Selection
var NoSelection = Selection{}

// Select returns a Selection for id
func Select(id int64) Selection {
	return Selection{id: id, set: true}
}

// ID returns the selected id and whether one is set
func (s Selection) ID() (int64, bool) {
	return s.id, s.set
}

// IsSet reports whether a row is selected
func (s Selection) IsSet() bool {
	return s.set
}
