package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Photos prints the shared gallery.
func (a *App) Photos(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	items := a.photos.Items()
	if len(items) == 0 {
		printlnFn("No photos yet")
		return nil
	}
	for _, p := range items {
		line := fmt.Sprintf("  %s  %s  %s", p.CreatedAt.Format("Jan 2 15:04"), p.UploadedBy, p.ImageURL)
		if p.Caption != "" {
			line += "  (" + p.Caption + ")"
		}
		printlnFn(line)
	}
	return nil
}

// AddPhoto reads an image file from disk and adds it to the gallery.
func (a *App) AddPhoto(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}
	caption, err := getSimpleText(a.reader, "Caption (optional)", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return err
	}

	form := a.photoForm()
	form.Attachment = data
	form.AttachmentName = filepath.Base(path)
	form.Caption = caption

	if errs := form.Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if _, err := form.Submit(ctx); err != nil {
		printlnFn("Could not add the photo:", err.Error())
		return err
	}
	printlnFn("Photo added 📸")
	return nil
}
