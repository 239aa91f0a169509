// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	avatarMaxSide  = 256
	avatarMaxBytes = 2 << 20 // 2MB sebelum konversi
)

/* =======================================================================
   Avatar → WebP
   Terima JPEG/PNG/WebP, downscale (keep aspect) lalu encode WebP lossy.
======================================================================= */

func ConvertAvatarToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, avatarMaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file gambar: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if len(all) > avatarMaxBytes {
		return nil, fmt.Errorf("ukuran gambar melebihi %dKB", avatarMaxBytes/1024)
	}

	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}

	// Downscale keep-aspect; Lanczos cukup untuk avatar
	img = imaging.Fit(img, avatarMaxSide, avatarMaxSide, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImage(all []byte) (image.Image, error) {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "png"):
		img, _, err := image.Decode(bytes.NewReader(all))
		return img, err
	default:
		return nil, fmt.Errorf("format tidak didukung: %s", ct)
	}
}
