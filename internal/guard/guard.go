// Package guard decides, before any page is rendered, whether a navigation
// request may proceed or must be redirected.
package guard

import "strings"

// Default paths of the two screens.
const (
	DefaultLoginPath     = "/"
	DefaultDashboardPath = "/dashboard"
)

// Class is the category a request path falls into.
type Class int

const (
	// Unmatched paths are outside the guarded patterns and always allowed.
	Unmatched Class = iota
	// Public is the login path.
	Public
	// Protected is the dashboard path and everything below it.
	Protected
)

func (c Class) String() string {
	switch c {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "unmatched"
	}
}

// Action is the outcome of a guard decision: either allow the request, or
// redirect it to Location.
type Action struct {
	Location string
}

// Allow lets the request through unmodified.
var Allow = Action{}

// RedirectTo builds a redirect action.
func RedirectTo(path string) Action {
	return Action{Location: path}
}

// IsRedirect reports whether the action short-circuits the request.
func (a Action) IsRedirect() bool {
	return a.Location != ""
}

func (a Action) String() string {
	if a.IsRedirect() {
		return "redirect:" + a.Location
	}
	return "allow"
}

// Routes holds the login and dashboard paths the guard operates on.
type Routes struct {
	LoginPath     string
	DashboardPath string
}

// DefaultRoutes returns the routes used by the application.
func DefaultRoutes() Routes {
	return Routes{LoginPath: DefaultLoginPath, DashboardPath: DefaultDashboardPath}
}

// Classify maps a request path to its class. The dashboard prefix matches on
// a segment boundary, so "/dashboardX" is unmatched.
func (r Routes) Classify(path string) Class {
	if path == r.LoginPath {
		return Public
	}
	if path == r.DashboardPath || strings.HasPrefix(path, strings.TrimSuffix(r.DashboardPath, "/")+"/") {
		return Protected
	}
	return Unmatched
}

// Decide returns the action for a request to path. hasToken reports whether
// a non-empty session token is present. It performs no I/O.
func (r Routes) Decide(path string, hasToken bool) Action {
	switch r.Classify(path) {
	case Protected:
		if !hasToken {
			return RedirectTo(r.LoginPath)
		}
	case Public:
		if hasToken {
			return RedirectTo(r.DashboardPath)
		}
	}
	return Allow
}
