package partials

import (
	"github.com/nfrund/lateslip-portal/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Toasts renders the stack of dismissable notifications in the top right corner.
func Toasts(f view.FlashData) g.Node {
	return h.Div(
		h.ID("toasts"),
		h.Class("fixed right-4 top-4 z-50 flex w-80 flex-col gap-2"),
		g.Attr("aria-live", "polite"),
		g.Map(f.Success, func(msg string) g.Node { return toast("success", msg) }),
		g.Map(f.Error, func(msg string) g.Node { return toast("error", msg) }),
	)
}

func toast(kind, msg string) g.Node {
	colour := "border-green-500 bg-green-50 text-green-800"
	if kind == "error" {
		colour = "border-red-500 bg-red-50 text-red-800"
	}
	return h.Div(
		h.DataAttr("toast", kind),
		h.Role("status"),
		h.Class("flex items-start justify-between rounded border-l-4 p-3 shadow "+colour),
		h.Span(h.Class("text-sm"), g.Text(msg)),
		h.Button(
			h.Type("button"),
			h.DataAttr("toast-dismiss", ""),
			g.Attr("aria-label", "Dismiss"),
			h.Class("ml-3 font-bold leading-none"),
			g.Text("×"),
		),
	)
}
