package level

import (
	"embed"
	"io/fs"
)

//go:embed screens/*.txt
var screensFS embed.FS

// Embedded returns the levels bundled with the binary
func Embedded() *FSSource {
	sub, err := fs.Sub(screensFS, "screens")
	if err != nil {
		panic(err)
	}
	return NewFSSource(sub, "embedded")
}
