package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/controldoc/web/internal/view"
)

// StatCard shows one labelled document count. variant selects the colour.
func StatCard(label string, count int, variant string) g.Node {
	return h.Article(
		h.Class("card card-"+variant),
		h.H2(h.Class("card-label"), g.Text(label)),
		h.P(h.Class("card-count"), g.Text(view.FormatCount(count))),
	)
}
