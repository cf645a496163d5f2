package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the language every page is rendered in.
var Locale = language.Spanish

// FormatCount renders a document count with the locale's digit grouping.
func FormatCount(n int) string {
	return message.NewPrinter(Locale).Sprintf("%d", n)
}

// Greeting returns the dashboard greeting for the given display name.
func Greeting(name string) string {
	if name == "" {
		return "Bienvenido"
	}
	return "Bienvenido, " + name
}
