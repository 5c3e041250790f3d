package helper

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxPhotoSize   = 2 << 20 // 2MB
	photoMaxWidth  = 512
	photoMaxHeight = 512
)

var allowedPhotoExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ProcessProfilePhoto validates an uploaded photo (sniffed content type
// plus declared extension) and re-encodes it to a normalized JPEG, so the
// stored file never depends on whatever bytes the client declared.
// Returns the JPEG bytes and a collision-resistant storage filename.
func ProcessProfilePhoto(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	if fileHeader == nil {
		return nil, "", fmt.Errorf("%w: missing photo file", ErrInvalidArgument)
	}
	if fileHeader.Size > maxPhotoSize {
		return nil, "", fmt.Errorf("%w: photo exceeds %d bytes", ErrInvalidArgument, maxPhotoSize)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedPhotoExts[ext]; !ok {
		return nil, "", fmt.Errorf("%w: invalid photo extension %q", ErrInvalidArgument, ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open photo: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, "", fmt.Errorf("read photo: %w", err)
	}

	contentType := http.DetectContentType(buf.Bytes())
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%w: invalid photo content type %q", ErrInvalidArgument, contentType)
	}

	var img image.Image
	if contentType == "image/webp" {
		img, err = webp.Decode(bytes.NewReader(buf.Bytes()))
	} else {
		img, err = imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: undecodable image", ErrInvalidArgument)
	}

	img = imaging.Fit(img, photoMaxWidth, photoMaxHeight, imaging.Lanczos)

	out := new(bytes.Buffer)
	if err := imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, "", fmt.Errorf("encode photo: %w", err)
	}

	filename := fmt.Sprintf("%s-%d.jpg", uuid.NewString(), time.Now().UnixNano())
	return out.Bytes(), filename, nil
}
