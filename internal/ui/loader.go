package ui

import (
	"fmt"
	"image"
	"io"
	"os"

	"gioui.org/x/explorer"
	"github.com/disintegration/imaging"
)

// photo is a decoded source image. The raster is read-only once loaded;
// all measurement coordinates refer to its native pixel space.
type photo struct {
	img    image.Image
	path   string
	width  int
	height int
}

// decodePhoto reads and decodes an image, honoring EXIF orientation so
// phone photos measure the way they display.
func decodePhoto(r io.Reader, path string) (*photo, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := img.Bounds()
	return &photo{
		img:    img,
		path:   path,
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// openPhotoFile loads a photo from a filesystem path (CLI preload).
func openPhotoFile(path string) (*photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return decodePhoto(f, path)
}

// openPhotoPicker runs the native file dialog off the UI loop and hands the
// decoded photo (or the error) to the frame loop. A failed load leaves the
// current photo untouched.
func (a *App) openPhotoPicker() {
	go func() {
		file, err := a.expl.ChooseFile("jpg", "jpeg", "png", "gif", "webp")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.deliverPhoto(nil, fmt.Errorf("file picker failed: %w", err))
			}
			return
		}
		defer file.Close()

		path := ""
		if f, ok := file.(*os.File); ok {
			path = f.Name()
		}
		p, err := decodePhoto(file, path)
		a.deliverPhoto(p, err)
	}()
}

// deliverPhoto stages a picker result for the frame loop.
func (a *App) deliverPhoto(p *photo, err error) {
	a.mu.Lock()
	a.pendingPhoto = p
	a.pendingErr = err
	a.mu.Unlock()
	a.window.Invalidate()
}

// takePendingPhoto drains the staged picker result. ok reports whether
// anything was staged.
func (a *App) takePendingPhoto() (p *photo, ok bool, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pendingPhoto == nil && a.pendingErr == nil {
		return nil, false, nil
	}
	p, err = a.pendingPhoto, a.pendingErr
	a.pendingPhoto, a.pendingErr = nil, nil
	return p, true, err
}
