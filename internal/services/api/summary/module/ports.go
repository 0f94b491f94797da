package module

import "inkwell/internal/services/api/summary/domain"

// Ports holds the cross module surfaces exposed by summaries
type Ports struct {
	Reader      domain.ReaderPort
	Invalidator domain.InvalidatorPort
	Generator   domain.GeneratorPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
