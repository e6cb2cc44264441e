package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/authform"
	"github.com/nfrund/lateslip-portal/internal/effects"
	"github.com/nfrund/lateslip-portal/internal/pages"
	"github.com/nfrund/lateslip-portal/internal/tokenstore"
	"github.com/nfrund/lateslip-portal/internal/view"
	"github.com/nfrund/lateslip-portal/internal/view/dto/auth"
	views "github.com/nfrund/lateslip-portal/web/src/templates/pages"
)

// AuthHandler serves the login and sign-up forms and their submissions.
type AuthHandler struct {
	pages          pages.Controllers
	guard          *authform.Guard
	validation     authform.Policy
	clearOnSuccess bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(controllers pages.Controllers, guard *authform.Guard, validation authform.Policy, clearOnSuccess bool) *AuthHandler {
	if validation == nil {
		validation = authform.NoValidation()
	}
	return &AuthHandler{
		pages:          controllers,
		guard:          guard,
		validation:     validation,
		clearOnSuccess: clearOnSuccess,
	}
}

func (h *AuthHandler) newForm(mode authform.Mode, action string) *authform.Form {
	opts := []authform.Option{authform.WithValidation(h.validation), authform.WithAction(action)}
	if h.clearOnSuccess {
		opts = append(opts, authform.WithOnSuccess(authform.ClearFields))
	}
	return authform.New(mode, opts...)
}

// carriedFields are the inputs both forms share. A successful submit that
// moves to the other form pre-fills them unless the on-success hook cleared them.
var carriedFields = []authform.Field{authform.FieldUsername, authform.FieldEmail}

// blankForm creates a form for a GET, pre-filled from any carried values.
func (h *AuthHandler) blankForm(c echo.Context, mode authform.Mode) *authform.Form {
	form := h.newForm(mode, c.Path())
	keys := make([]string, len(carriedFields))
	for i, field := range carriedFields {
		keys[i] = string(field)
	}
	form.BindForm(view.TakeCarriedValues(c, keys...))
	return form
}

// carriedValues are the form's remaining shared values.
func carriedValues(form *authform.Form) url.Values {
	values := url.Values{}
	for _, field := range carriedFields {
		if v, ok := form.Value(field); ok {
			values.Set(string(field), v)
		}
	}
	return values
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return h.renderForm(c, h.blankForm(c, authform.ModeLogin), view.GetFlashData(c))
}

// LoginPost handles the login form submission (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	return h.submit(c, authform.ModeLogin)
}

// RegisterGet renders the sign-up page (GET / and GET /signUp).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return h.renderForm(c, h.blankForm(c, authform.ModeRegistration), view.GetFlashData(c))
}

// RegisterPost handles the sign-up form submission (POST / and POST /signUp).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	return h.submit(c, authform.ModeRegistration)
}

func (h *AuthHandler) submit(c echo.Context, mode authform.Mode) error {
	ctx := c.Request().Context()

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	form := h.newForm(mode, c.Path())
	form.BindForm(values)

	release, ok := h.guard.Begin(form.ID())
	if !ok {
		slog.InfoContext(ctx, "Submit already in flight", "mode", mode, "form_id", form.ID(), "policy", h.guard.Policy())
		if h.guard.Policy() == authform.GuardIgnore {
			return c.NoContent(http.StatusNoContent)
		}
		return h.rerender(c, form, view.FlashData{Error: []string{pages.MsgSubmitInFlight}})
	}
	defer release()

	submission, err := form.Submit()
	if err != nil {
		slog.InfoContext(ctx, "Submission rejected by validation", "mode", mode, "error", err)
		return h.rerender(c, form, view.FlashData{Error: []string{pages.MsgMissingFields}})
	}

	rec := effects.NewRecorder()
	fx := pages.Effects{Tokens: tokenstore.ForRequest(c), Notify: rec, Navigate: rec}
	if h.pages.Dispatch(ctx, fx, submission) {
		form.Succeeded()
	}
	if ctx.Err() != nil {
		// Nobody is listening for the response.
		return nil
	}

	if target, navigated := rec.Target(); navigated {
		// The toast has to survive the redirect. Shared fields follow only
		// to the other form.
		var carry url.Values
		if target == form.SiblingPath() {
			carry = carriedValues(form)
		}
		if err := view.SaveRedirect(c, rec.Notifications(), carry); err != nil {
			slog.WarnContext(ctx, "Failed to save flash messages", "error", err)
		}
		return redirect(c, target)
	}
	return h.rerender(c, form, view.FromNotifications(rec.Notifications()))
}

// rerender shows the form again after a failed submit. Typed values are
// kept, except the password.
func (h *AuthHandler) rerender(c echo.Context, form *authform.Form, flashes view.FlashData) error {
	form.Unset(authform.FieldPassword)
	return h.renderForm(c, form, flashes)
}

func (h *AuthHandler) renderForm(c echo.Context, form *authform.Form, flashes view.FlashData) error {
	data := auth.FormData{Form: form}
	if form.Mode() == authform.ModeLogin {
		return renderPage(c, http.StatusOK, views.LoginTitle, flashes, views.LoginContent(data))
	}
	return renderPage(c, http.StatusOK, views.SignUpTitle, flashes, views.SignUpContent(data))
}
