// Package navigate decides which top-level surface the client shows for a
// given session state. Routing reads only the session status: account
// details never influence which surface is visible.
package navigate

import "github.com/MKhiriev/go-chem-crm/models"

// Route is a top-level client surface.
type Route int

const (
	// RouteSplash is shown while the session is still initializing.
	RouteSplash Route = iota
	// RouteAuth hosts login, signup and password reset.
	RouteAuth
	// RouteMain hosts the CRM surfaces and requires a signed-in session.
	RouteMain
)

func (r Route) String() string {
	switch r {
	case RouteSplash:
		return "splash"
	case RouteAuth:
		return "auth"
	case RouteMain:
		return "main"
	default:
		return "unknown"
	}
}

// SessionSource is the read side of the session manager the gate depends on.
type SessionSource interface {
	Current() models.Session
}

// Gate maps session state to the route the client must display.
type Gate struct {
	sessions SessionSource
}

func NewGate(sessions SessionSource) *Gate {
	return &Gate{sessions: sessions}
}

// Route returns the surface for the current session.
func (g *Gate) Route() Route {
	return RouteFor(g.sessions.Current().Status)
}

// RouteFor maps a session status to its route.
func RouteFor(status models.SessionStatus) Route {
	switch status {
	case models.StatusSignedIn:
		return RouteMain
	case models.StatusSignedOut:
		return RouteAuth
	default:
		return RouteSplash
	}
}
