package constants

import (
	"path/filepath"
	"strings"
)

// Jenis file materi, dipakai frontend untuk memilih viewer.
const (
	FileTypeVideo   = "video"
	FileTypeAudio   = "audio"
	FileTypeDoc     = "doc"
	FileTypePDF     = "pdf"
	FileTypeSlide   = "slide"
	FileTypeImage   = "image"
	FileTypeUnknown = "unknown"
)

func DetectFileTypeFromURL(fileURL string) string {
	ext := strings.ToLower(filepath.Ext(fileURL))

	switch ext {
	case ".mp4", ".webm", ".mov":
		return FileTypeVideo
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDoc
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx":
		return FileTypeSlide
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}
