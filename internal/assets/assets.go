// Package assets selects where static files are served from.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/controldoc/web/web"
)

// Static returns the static asset tree. An empty dir selects the assets
// embedded in the binary; otherwise files are read from dir on disk.
func Static(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(web.FS, "static")
	}
	return FromAfero(afero.NewOsFs(), dir)
}

// FromAfero exposes dir within fsys as a read-only fs.FS.
func FromAfero(fsys afero.Fs, dir string) (fs.FS, error) {
	ok, err := afero.DirExists(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("stat static dir %q: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("static dir %q does not exist", dir)
	}
	return afero.NewIOFS(afero.NewReadOnlyFs(afero.NewBasePathFs(fsys, dir))), nil
}
