package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const invoiceFolder = "shakya-gallery/invoices"

// DocumentArchive keeps a copy of generated documents
type DocumentArchive interface {
	ArchivePDF(ctx context.Context, content []byte, publicID string) (string, error)
	DeleteDocument(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld, folder: invoiceFolder}, nil
}

// ArchivePDF uploads a PDF as a raw asset and returns its secure URL.
// Uploading the same public ID again replaces the previous copy.
func (s *CloudinaryService) ArchivePDF(ctx context.Context, content []byte, publicID string) (string, error) {
	unique := false
	overwrite := true
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       publicID,
		ResourceType:   "raw",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// DeleteDocument removes an archived document by public ID
func (s *CloudinaryService) DeleteDocument(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     s.folder + "/" + publicID,
		ResourceType: "raw",
	})
	return err
}
