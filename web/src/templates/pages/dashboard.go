package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/controldoc/web/internal/view"
	"github.com/controldoc/web/internal/view/dto/dashboard"
	"github.com/controldoc/web/web/src/templates/partials"
)

// StatisticsUnavailableMessage is shown when the counts fell back to zero.
const StatisticsUnavailableMessage = "No se pudieron cargar las estadísticas. Se muestran valores en cero."

// Dashboard shows the three document status counts.
func Dashboard(data dashboard.DashboardData) g.Node {
	return h.Section(
		h.Class("dashboard"),
		h.H1(g.Text(view.Greeting(data.DisplayName))),
		g.If(data.Unavailable,
			h.P(h.Class("alert alert-warning"), h.Role("alert"), g.Text(StatisticsUnavailableMessage)),
		),
		h.Div(
			h.Class("stats"),
			partials.StatCard("Vigentes", data.Stats.Valid, "valid"),
			partials.StatCard("Por vencer", data.Stats.Expiring, "expiring"),
			partials.StatCard("Vencidos", data.Stats.Expired, "expired"),
		),
		h.P(h.Class("stats-total"), g.Textf("Total: %s documentos", view.FormatCount(data.Stats.Total()))),
	)
}
