package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/controldoc/web/internal/view"
)

// Flash renders pending flash messages, or nothing.
func Flash(flashes view.FlashData) g.Node {
	if !flashes.HasAny() {
		return nil
	}
	return h.Div(
		h.ID("flash"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.P(h.Class("alert alert-success"), h.Role("status"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return h.P(h.Class("alert alert-error"), h.Role("alert"), g.Text(msg))
		}),
	)
}
