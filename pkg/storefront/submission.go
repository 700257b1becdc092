package storefront

import (
	"context"
	"io"
	"strings"
)

// MaxImageSize is the upload limit for source images (5 MiB).
const MaxImageSize = 5 << 20

// SelectedImage is a candidate source image. Open must return a fresh reader
// for the image bytes on every call; the first open backs the preview, later
// ones feed the upload.
type SelectedImage struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// Submission drives the landing page flow: image selection with its preview
// handle, then validate-before-network submit.
type Submission struct {
	client  *Client
	image   *SelectedImage
	preview io.ReadCloser
}

func NewSubmission(client *Client) *Submission {
	return &Submission{client: client}
}

// SelectImage validates the candidate and replaces the current selection.
// Oversized images are rejected with a ValidationError and the prior
// selection, including its preview handle, stays untouched. A superseded
// preview handle is always released.
func (s *Submission) SelectImage(img SelectedImage) error {
	if img.Size > MaxImageSize {
		return &ValidationError{Message: "Image size should be less than 5MB"}
	}

	preview, err := img.Open()
	if err != nil {
		return err
	}

	if s.preview != nil {
		s.preview.Close()
	}
	s.image = &img
	s.preview = preview
	return nil
}

// Image returns the current selection, nil when none is selected.
func (s *Submission) Image() *SelectedImage {
	return s.image
}

// Close releases the preview handle. Safe to call with no selection.
func (s *Submission) Close() error {
	if s.preview == nil {
		return nil
	}
	err := s.preview.Close()
	s.preview = nil
	return err
}

// Submit validates email and image before any network call, creates the order
// and returns the checkout attempt for the hosted widget. Failures leave the
// submission re-triable; nothing retries automatically.
func (s *Submission) Submit(ctx context.Context, email string) (*CheckoutAttempt, error) {
	if strings.TrimSpace(email) == "" || s.image == nil {
		return nil, &ValidationError{Message: "Please provide both email and image"}
	}

	body, err := s.image.Open()
	if err != nil {
		return nil, err
	}
	defer body.Close()

	params, err := s.client.SubmitOrder(ctx, email, s.image.Name, body)
	if err != nil {
		return nil, err
	}
	return newCheckoutAttempt(params, email), nil
}
