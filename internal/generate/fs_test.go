package generate

import (
	"io/fs"
)

// missingLayer hides one file of an underlying file system
type missingLayer struct {
	hide string
	base fs.FS
}

func (m missingLayer) Open(name string) (fs.File, error) {
	if name == m.hide {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return m.base.Open(name)
}
