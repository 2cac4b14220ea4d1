package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/Splitter/pkg/export"
	"github.com/dixieflatline76/Splitter/util/log"
)

// fileSaveSink asks the user where to put each file. Save returns once the dialog is shown;
// write failures are reported in the window.
type fileSaveSink struct {
	window  fyne.Window
	dir     string
	onSaved func(fyne.URI)
}

var _ export.Sink = (*fileSaveSink)(nil)

func (s *fileSaveSink) Save(data []byte, suggestedName string) error {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if w == nil {
			return // cancelled
		}
		if err := writeAndClose(w, data); err != nil {
			dialog.ShowError(fmt.Errorf("saving %s: %w", w.URI().Name(), err), s.window)
			return
		}
		log.Printf("Saved %s", w.URI())
		if s.onSaved != nil {
			s.onSaved(w.URI())
		}
	}, s.window)
	save.SetFileName(suggestedName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	if loc := listableDir(s.dir); loc != nil {
		save.SetLocation(loc)
	}
	save.Show()
	return nil
}

func writeAndClose(w fyne.URIWriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// listableDir returns dir as a dialog location, or nil when it is unset or unreadable.
func listableDir(dir string) fyne.ListableURI {
	if dir == "" {
		return nil
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.Debugf("ignoring dialog location %s: %v", dir, err)
		return nil
	}
	return lister
}
