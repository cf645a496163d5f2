package guard_test

import (
	"testing"

	"github.com/controldoc/web/internal/guard"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	routes := guard.DefaultRoutes()

	tests := []struct {
		name     string
		path     string
		hasToken bool
		want     guard.Action
	}{
		{"protected without token redirects to login", "/dashboard", false, guard.RedirectTo("/")},
		{"protected sub-path without token redirects to login", "/dashboard/documents/42", false, guard.RedirectTo("/")},
		{"login with token redirects to dashboard", "/", true, guard.RedirectTo("/dashboard")},
		{"login without token is allowed", "/", false, guard.Allow},
		{"protected with token is allowed", "/dashboard", true, guard.Allow},
		{"protected sub-path with token is allowed", "/dashboard/", true, guard.Allow},
		{"unmatched path without token is allowed", "/health", false, guard.Allow},
		{"unmatched path with token is allowed", "/static/app.css", true, guard.Allow},
		{"prefix without segment boundary is unmatched", "/dashboardX", false, guard.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routes.Decide(tt.path, tt.hasToken))
		})
	}
}

func TestDecide_NeverRedirectsToItself(t *testing.T) {
	routes := guard.DefaultRoutes()
	paths := []string{"/", "/dashboard", "/dashboard/x", "/other"}

	for _, path := range paths {
		for _, hasToken := range []bool{true, false} {
			action := routes.Decide(path, hasToken)
			if action.IsRedirect() {
				assert.NotEqual(t, path, action.Location, "path %q token=%v", path, hasToken)
				// Following the redirect with the same session must settle.
				assert.False(t, routes.Decide(action.Location, hasToken).IsRedirect())
			}
		}
	}
}

func TestClassify(t *testing.T) {
	routes := guard.Routes{LoginPath: "/login", DashboardPath: "/app/"}

	assert.Equal(t, guard.Public, routes.Classify("/login"))
	assert.Equal(t, guard.Protected, routes.Classify("/app/"))
	assert.Equal(t, guard.Protected, routes.Classify("/app/reports"))
	assert.Equal(t, guard.Unmatched, routes.Classify("/"))
	assert.Equal(t, "protected", guard.Protected.String())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "allow", guard.Allow.String())
	assert.Equal(t, "redirect:/", guard.RedirectTo("/").String())
}
