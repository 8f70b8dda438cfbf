package person

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-api/internal/media"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// UploadPhoto normalizes an uploaded picture, stores it and points the
// person's foto_url at it.
type UploadPhoto struct {
	repo      domain.Repository
	store     storage.ObjectStore
	maxSide   int
	maxPixels int
	audit     audit.Recorder
}

// NewUploadPhoto accepts a nil store, in which case uploads are refused.
func NewUploadPhoto(
	repo domain.Repository,
	store storage.ObjectStore,
	maxSide, maxPixels int,
	audit audit.Recorder,
) *UploadPhoto {
	return &UploadPhoto{repo: repo, store: store, maxSide: maxSide, maxPixels: maxPixels, audit: audit}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	personID uint,
	r io.Reader,
) (*models.Person, error) {

	if uc.store == nil {
		return nil, httperr.InvalidInput("uploads_disabled", "La carga de fotos no está habilitada.")
	}

	p, err := uc.repo.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	body, err := media.Normalize(r, uc.maxSide, uc.maxPixels)
	if err != nil {
		if errors.Is(err, media.ErrUnsupported) {
			return nil, httperr.InvalidInput("invalid_image", "La imagen debe ser PNG, JPEG o WebP.", "foto")
		}
		if errors.Is(err, media.ErrTooLarge) {
			return nil, httperr.InvalidInput("invalid_image", "La imagen excede las dimensiones permitidas.", "foto")
		}
		return nil, err
	}

	key := fmt.Sprintf("personas/%d/%s%s", p.ID, uuid.NewString(), media.Extension)
	url, err := uc.store.Put(ctx, key, media.ContentType, body)
	if err != nil {
		return nil, err
	}

	return uc.setURL(ctx, actor, p, url)
}

// SetURL records an externally hosted photo.
func (uc *UploadPhoto) SetURL(
	ctx context.Context,
	actor *uuid.UUID,
	personID uint,
	url string,
) (*models.Person, error) {

	p, err := uc.repo.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	return uc.setURL(ctx, actor, p, url)
}

func (uc *UploadPhoto) setURL(
	ctx context.Context,
	actor *uuid.UUID,
	p *models.Person,
	url string,
) (*models.Person, error) {

	p.PhotoURL = &url
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   actor,
		Action:   "person_photo_updated",
		Entity:   "persona",
		EntityID: &p.ID,
		Metadata: map[string]string{"foto_url": url},
	})
	return p, nil
}
