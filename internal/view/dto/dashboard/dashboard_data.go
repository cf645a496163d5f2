package dashboard

import "github.com/controldoc/web/internal/domain"

// DashboardData is the view model for the dashboard page.
type DashboardData struct {
	// DisplayName comes from the session token's claims and may be empty.
	DisplayName string
	Stats       domain.Statistics
	// Unavailable is set when the counts could not be loaded and Stats holds
	// the zero fallback.
	Unavailable bool
}
