// Package assets embeds the shipped maps and tuning documents.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed maps/*.map tuning/*.yaml
var files embed.FS

// MapDir is the directory holding *.map files inside FS.
const MapDir = "maps"

// FS returns every embedded asset.
func FS() fs.FS { return files }

// Tuning returns the embedded tuning directory.
func Tuning() fs.FS {
	sub, err := fs.Sub(files, "tuning")
	if err != nil {
		// Only fails for an invalid path, and "tuning" is a constant.
		panic(err)
	}
	return sub
}
