package layouts

import (
	"github.com/a-h/templ"
	"github.com/nfrund/lateslip-portal/internal/view"
	"github.com/nfrund/lateslip-portal/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
)

// Base wraps page content in the HTML document shell with the toast stack.
// Links and forms inside the body are boosted by htmx.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return view.AdaptGomponentToTempl(document(title, flashes, view.AdaptTemplToGomponent(content)))
}

func document(title string, flashes view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Script(h.Src(tailwindSrc)),
			h.Script(h.Src(htmxSrc)),
			h.Script(h.Src("/static/auth.js"), h.Defer()),
		},
		Body: []g.Node{
			hx.Boost("true"),
			h.Class("min-h-screen bg-slate-100 font-sans"),
			partials.Toasts(flashes),
			h.Main(h.ID("content"), h.Class("flex min-h-screen items-center justify-center p-4"), content),
		},
	})
}
