package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoFile              = errors.New("no file provided")
	ErrFileNameTooLong     = errors.New("file name is too long")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
)

const maxFileNameSize = 255

// mimeByExt maps the supported upload extensions to the MIME type the
// sniffed file content must match.
var mimeByExt = map[string]string{
	".pdf": "application/pdf",
	".mp4": "video/mp4",
}

// UploadValidator checks an incoming multipart file against the configured
// extension allow-list and size cap, then sniffs the content to catch
// spoofed extensions. On success it returns the opened file positioned at
// the start and the detected content type.
func UploadValidator(fh *multipart.FileHeader) (int, multipart.File, string, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, "", ErrNoFile
	}

	if len(fh.Filename) > maxFileNameSize {
		return http.StatusBadRequest, nil, "", ErrFileNameTooLong
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	if !slices.Contains(viper.GetStringSlice("upload.allowed_extensions"), ext) {
		return http.StatusBadRequest, nil, "", ErrFileTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, "", ErrFileTooLarge
	}

	// The extension is easy to spoof, so check the actual bytes too
	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, "", err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, "", err
	}

	want, ok := mimeByExt[ext]
	if !ok || !mime.Is(want) {
		f.Close()
		return http.StatusBadRequest, nil, "", ErrFileTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, "", err
	}

	return 0, f, want, nil
}
