package layouts

import (
	"io/fs"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/controldoc/web/internal/view"
	"github.com/controldoc/web/web"
	"github.com/controldoc/web/web/src/templates/partials"
)

const (
	htmxFile      = "htmx.min.js"
	htmxCDN       = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	htmxIntegrity = "sha384-HGfztofotfshcF7+8n44JQL2oJmowVChPTg48S+jvZoztPfvwD79OC/LTtG6dMp+"
)

var htmxScript = htmxScriptFor(web.FS)

// htmxScriptFor serves the copy vendored under static/ when it was embedded,
// and otherwise the pinned CDN build guarded by subresource integrity.
func htmxScriptFor(fsys fs.FS) g.Node {
	if _, err := fs.Stat(fsys, "static/"+htmxFile); err == nil {
		return h.Script(h.Src("/static/"+htmxFile), h.Defer())
	}
	return h.Script(
		h.Src(htmxCDN),
		g.Attr("integrity", htmxIntegrity),
		g.Attr("crossorigin", "anonymous"),
		h.Defer(),
	)
}

// Base wraps page content in the shared document shell.
func Base(title string, flashes view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "es",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			htmxScript,
		},
		Body: []g.Node{
			h.Header(
				h.Class("site-header"),
				h.Nav(
					h.A(h.Class("brand"), h.Href("/"), g.Text(AppName)),
					h.Span(h.Class("tagline"), g.Text("SaaS Control Documental")),
				),
			),
			h.Main(
				h.Class("container"),
				partials.Flash(flashes),
				content,
			),
		},
	})
}
