package forms

import (
	"context"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

type PhotoWriter interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	AddPhoto(ctx context.Context, p *models.PhotoEntry) (*models.PhotoEntry, error)
}

// PhotoForm adds one photo to the shared gallery.
type PhotoForm struct {
	Caption        string
	Attachment     []byte
	AttachmentName string

	store PhotoWriter
}

func NewPhotoForm(store PhotoWriter) *PhotoForm {
	return &PhotoForm{store: store}
}

func (f *PhotoForm) Validate() Errors {
	errs := Errors{}
	if len(f.Attachment) == 0 {
		errs["attachment"] = "photo is required"
	} else if len(f.Attachment) > MaxAttachmentSize {
		errs["attachment"] = "photo is too big"
	}
	return errs
}

func (f *PhotoForm) Submit(ctx context.Context) (*models.PhotoEntry, error) {
	if !f.Validate().Valid() {
		return nil, common.ErrValidation
	}

	ref, err := f.store.Upload(ctx, f.AttachmentName, f.Attachment)
	if err != nil {
		return nil, err
	}

	created, err := f.store.AddPhoto(ctx, &models.PhotoEntry{
		ImageURL: ref,
		Caption:  f.Caption,
	})
	if err != nil {
		// The uploaded file stays behind with no referencing record.
		// Accepted leak; there is no rollback.
		return nil, err
	}

	f.Caption = ""
	f.Attachment = nil
	f.AttachmentName = ""
	return created, nil
}
