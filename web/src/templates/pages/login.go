package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/controldoc/web/internal/view/dto/auth"
)

// LoginFormID is the id of the form element htmx swaps on a failed attempt.
const LoginFormID = "login-form"

// Login is the full login screen.
func Login(data auth.LoginData) g.Node {
	return h.Section(
		h.Class("login"),
		h.H1(g.Text("Iniciar sesión")),
		LoginForm(data),
	)
}

// LoginForm is the credentials form. It posts to "/" natively, or through
// htmx, which replaces the form with the server's re-rendered copy. The
// submit button is disabled while a request is in flight: hx-disabled-elt
// covers htmx requests and the inline onsubmit handler covers native posts
// when the htmx script failed to load. Without JavaScript neither applies.
func LoginForm(data auth.LoginData) g.Node {
	return h.Form(
		h.ID(LoginFormID),
		h.Class("login-form"),
		h.Method("post"),
		h.Action("/"),
		hx.Post("/"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		g.Attr("onsubmit", "this.querySelector('button').disabled = true"),
		g.If(data.Error != "",
			h.P(h.Class("alert alert-error"), h.Role("alert"), g.Text(data.Error)),
		),
		h.Label(h.For("email"), g.Text("Correo electrónico")),
		h.Input(
			h.ID("email"),
			h.Type("email"),
			h.Name("email"),
			h.AutoComplete("username"),
			h.Required(),
			g.If(data.Email != "", h.Value(data.Email)),
		),
		h.Label(h.For("password"), g.Text("Contraseña")),
		h.Input(
			h.ID("password"),
			h.Type("password"),
			h.Name("password"),
			h.AutoComplete("current-password"),
			h.Required(),
		),
		h.Button(
			h.Type("submit"),
			h.Span(h.Class("idle-label"), g.Text("Entrar")),
			h.Span(h.Class("htmx-indicator"), g.Text("Ingresando...")),
		),
	)
}
