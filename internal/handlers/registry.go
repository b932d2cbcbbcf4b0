package handlers

// AppHandlers bundles every HTTP handler so wiring and route registration
// stay in one place.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	InternshipHandler *InternshipHandler
}
