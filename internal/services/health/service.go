package health

// Service encapsulates health-related checks.
type Service struct {
	storage string
}

// NewService constructs a health service reporting the active storage mode.
func NewService(storage string) *Service {
	return &Service{storage: storage}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "storage": s.storage}
}
