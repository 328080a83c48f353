// Package media wraps the Cloudinary upload API. Profile pictures sent as
// inline data URIs are pushed here and only the hosted URL is persisted.
package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Service struct {
	cld *cloudinary.Cloudinary
}

func NewService(cloudName, apiKey, apiSecret string) (*Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &Service{cld: cld}, nil
}

// Upload pushes an image (data URI or remote URL) into the given folder and
// returns the hosted HTTPS URL.
func (s *Service) Upload(ctx context.Context, image, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		UploadPreset: "ml_default",
		Folder:       folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: empty secure URL (%s)", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
