package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyEmail    = "form_email"
)

// FlashData carries the one-shot messages shown on the next rendered page.
type FlashData struct {
	Success []string
	Error   []string
}

// HasAny reports whether there is anything to show.
func (f FlashData) HasAny() bool {
	return len(f.Success) > 0 || len(f.Error) > 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFormError records a failed form submission: the error message and the
// submitted email, stored together in a single session write.
func SetFormError(c echo.Context, message, email string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, flashKeyError)
	if email != "" {
		sess.AddFlash(email, flashKeyEmail)
	}
	_ = sess.Save(c.Request(), c.Response())
}

// GetFormEmail retrieves and clears the remembered email address.
func GetFormEmail(c echo.Context) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	values := sess.Flashes(flashKeyEmail)
	if len(values) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	email, _ := values[0].(string)
	return email
}

// GetFlashData retrieves and clears the success and error messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	data.Success = toStrings(sess.Flashes(flashKeySuccess))
	data.Error = toStrings(sess.Flashes(flashKeyError))

	// Flashes() clears what it returns; persist that.
	if data.HasAny() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
