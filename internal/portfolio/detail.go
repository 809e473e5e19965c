package portfolio

import (
	"sync"

	"github.com/snackashi/portfolio/internal/content"
)

// Detail tracks which project the modal shows. The page scroll lock is
// owned here and only changes through Open and Close, so it is locked
// exactly when a project is selected.
type Detail struct {
	mu       sync.Mutex
	selected *content.Project
	locked   bool
}

// Open selects p and locks page scrolling.
func (d *Detail) Open(p content.Project) Modal {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.selected = &p
	d.locked = true
	return NewModal(p)
}

// Close clears the selection and unlocks scrolling. It reports whether a
// modal was open; closing a closed modal does nothing.
func (d *Detail) Close() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.selected == nil {
		return false
	}
	d.selected = nil
	d.locked = false
	return true
}

// Selected returns the open project, if any.
func (d *Detail) Selected() (content.Project, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.selected == nil {
		return content.Project{}, false
	}
	return *d.selected, true
}

// ScrollLocked reports whether page scrolling is locked.
func (d *Detail) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}
