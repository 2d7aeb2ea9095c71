package content

import "fmt"

// ErrItemNotFound indicates no list item with the given id exists in the
// named section.
type ErrItemNotFound struct {
	Section string
	ID      string
}

func (e *ErrItemNotFound) Error() string {
	return fmt.Sprintf("%s item not found: %s", e.Section, e.ID)
}

// ErrCategoryExists indicates a skill category with the given name already
// exists.
type ErrCategoryExists struct {
	Name string
}

func (e *ErrCategoryExists) Error() string {
	return fmt.Sprintf("skill category already exists: %s", e.Name)
}

// ErrCategoryNotFound indicates no skill category with the given name exists.
type ErrCategoryNotFound struct {
	Name string
}

func (e *ErrCategoryNotFound) Error() string {
	return fmt.Sprintf("skill category not found: %s", e.Name)
}

// ErrIndexOutOfRange indicates a reorder index outside the list bounds.
// Out-of-range reorders are rejected rather than clamped.
type ErrIndexOutOfRange struct {
	Section string
	Index   int
	Length  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s index %d out of range for list of length %d", e.Section, e.Index, e.Length)
}

// ErrUnknownSection indicates a section name outside the reorderable set.
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown reorderable section: %s", e.Section)
}
