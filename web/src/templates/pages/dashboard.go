package pages

import (
	"github.com/nfrund/lateslip-portal/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const DashboardTitle = "Admin Dashboard"

// DashboardContent is shown at /adminDashboard when no external dashboard is configured.
func DashboardContent(data auth.DashboardData) g.Node {
	return h.Div(
		h.Class("w-full max-w-md rounded-xl bg-white p-8 text-center shadow-xl"),
		h.H1(h.Class("mb-4 text-2xl font-bold text-indigo-700"), g.Text(DashboardTitle)),
		g.If(data.HasToken,
			h.P(h.Class("text-slate-700"),
				g.Text("You are signed in."),
				g.If(data.Role != "", h.Span(h.Class("ml-1"), g.Textf("Role: %s.", data.Role))),
			),
		),
		g.If(!data.HasToken,
			h.P(h.Class("text-slate-700"),
				g.Text("You are not signed in. "),
				h.A(h.Href("/login"), h.Class("font-semibold text-indigo-600"), g.Text("Login")),
			),
		),
	)
}
