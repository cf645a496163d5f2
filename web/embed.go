package web

import "embed"

//go:generate curl -sSfL -o static/htmx.min.js https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js

// FS holds the static assets served under /static.
//
//go:embed static/*
var FS embed.FS
