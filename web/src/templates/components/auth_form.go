package components

import (
	"github.com/nfrund/lateslip-portal/internal/authform"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const inputClass = "w-full rounded-md border border-slate-300 py-2 pl-3 pr-10 focus:border-indigo-500 focus:outline-none"

// AuthForm renders the shared login/sign-up card for f.
// The username input only exists in registration mode, and the password is
// never echoed back into the page.
func AuthForm(f *authform.Form) g.Node {
	mode := f.Mode()
	return h.Div(
		h.Class("w-full max-w-sm overflow-hidden rounded-xl bg-white shadow-xl"),
		h.FormEl(
			h.ID("auth-form"),
			h.Method("post"),
			h.Action(f.Action()),
			h.DataAttr("explicit-submit", ""),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			h.Class("flex flex-col gap-4 p-8"),
			h.Input(h.Type("hidden"), h.Name(authform.FormIDField), h.Value(f.ID())),
			h.H1(h.Class("mb-2 text-center text-2xl font-bold text-indigo-700"), g.Text("Late Slip Management")),
			g.If(f.HasField(authform.FieldUsername),
				textInput(f, authform.FieldUsername, "Username", "text", "username", "👤"),
			),
			textInput(f, authform.FieldEmail, "Email", "text", "email", "✉"),
			passwordInput(f, mode),
			g.If(mode == authform.ModeLogin,
				h.P(h.Class("text-right text-sm text-indigo-600"), g.Text("Forgot Password!")),
			),
			h.Button(
				h.Type("submit"),
				h.Class("rounded-md bg-indigo-600 py-2 font-semibold text-white hover:bg-indigo-700 disabled:opacity-50"),
				g.Text(mode.SubmitLabel()),
			),
		),
		h.Div(
			h.Class("flex justify-center gap-1 bg-slate-50 py-4 text-sm"),
			h.P(g.Text(mode.SiblingPrompt())),
			h.A(h.Href(f.SiblingPath()), h.Class("font-semibold text-indigo-600"), g.Text(mode.SiblingLabel())),
		),
	)
}

func textInput(f *authform.Form, field authform.Field, label, inputType, autocomplete, icon string) g.Node {
	value, _ := f.Value(field)
	return h.Div(
		h.Class("relative"),
		h.LabelEl(h.For(string(field)), h.Class("sr-only"), g.Text(label)),
		h.Input(
			h.ID(string(field)),
			h.Name(string(field)),
			h.Type(inputType),
			h.Placeholder(label),
			h.AutoComplete(autocomplete),
			h.Class(inputClass),
			g.If(value != "", h.Value(value)),
		),
		h.Span(h.Class("pointer-events-none absolute right-3 top-2 text-slate-400"), g.Attr("aria-hidden", "true"), g.Text(icon)),
	)
}

func passwordInput(f *authform.Form, mode authform.Mode) g.Node {
	autocomplete := "current-password"
	if mode == authform.ModeRegistration {
		autocomplete = "new-password"
	}
	hintClass := "pointer-events-none absolute right-3 top-2 text-slate-400"
	if f.TypingPassword() {
		hintClass += " hidden"
	}
	name := string(authform.FieldPassword)
	return h.Div(
		h.Class("relative"),
		h.LabelEl(h.For(name), h.Class("sr-only"), g.Text("Password")),
		h.Input(
			h.ID(name),
			h.Name(name),
			h.Type("password"),
			h.Placeholder("Password"),
			h.AutoComplete(autocomplete),
			h.DataAttr("password-input", ""),
			h.Class(inputClass),
		),
		h.Span(h.Class(hintClass), h.DataAttr("password-hint", ""), g.Attr("aria-hidden", "true"), g.Text("🔒")),
	)
}
