package slider

import "fmt"

// LabelResolver supplies the accessible name of a handle.
type LabelResolver interface {
	ResolveLabel(handleID string) (string, bool)
}

// MapLabels resolves labels from a fixed map keyed by handle ID.
type MapLabels map[string]string

// ResolveLabel implements LabelResolver.
func (m MapLabels) ResolveLabel(handleID string) (string, bool) {
	l, ok := m[handleID]
	return l, ok && l != ""
}

// handleLabel resolves the display name of handle i, falling back to its ID
// and then to its position.
func (m *Model) handleLabel(i int) string {
	h, ok := m.store.Handle(i)
	if !ok {
		return ""
	}
	if m.labels != nil && h.ID != "" {
		if l, ok := m.labels.ResolveLabel(h.ID); ok {
			return l
		}
	}
	if h.ID != "" {
		return h.ID
	}
	return fmt.Sprintf("Handle %d", i+1)
}
