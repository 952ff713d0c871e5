package validators

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  error
	}{
		{"valid", "a@x.com", nil},
		{"empty", "", ErrEmailEmpty},
		{"no at sign", "ax.com", ErrEmailInvalid},
		{"spaces", "a @x.com", ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailValidator(tt.email))
		})
	}
}

func TestPasswordValidator(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "pw123", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "pw", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 73), ErrPasswordTooLong},
		{"boundary", strings.Repeat("a", 72), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordValidator(tt.password))
		})
	}
}

// minimal but sniffable file contents
var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	mp4Bytes = append([]byte{0, 0, 0, 0x18}, []byte("ftypisom\x00\x00\x02\x00isomiso2")...)
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func setupUploadConfig(t *testing.T) {
	t.Helper()
	viper.Set("upload.allowed_extensions", []string{".pdf", ".mp4"})
	viper.Set("upload.max_size", int64(20<<20))
}

func TestUploadValidator_AcceptsPDF(t *testing.T) {
	setupUploadConfig(t)

	fh := makeFileHeader(t, "report.pdf", pdfBytes)

	code, f, contentType, err := UploadValidator(fh)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "application/pdf", contentType)
	f.Close()
}

func TestUploadValidator_AcceptsMP4(t *testing.T) {
	setupUploadConfig(t)

	fh := makeFileHeader(t, "clip.mp4", mp4Bytes)

	code, f, contentType, err := UploadValidator(fh)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "video/mp4", contentType)
	f.Close()
}

func TestUploadValidator_RejectsDisallowedExtension(t *testing.T) {
	setupUploadConfig(t)

	fh := makeFileHeader(t, "notes.txt", []byte("plain text"))

	code, _, _, err := UploadValidator(fh)
	assert.ErrorIs(t, err, ErrFileTypeUnsupported)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUploadValidator_RejectsSpoofedExtension(t *testing.T) {
	setupUploadConfig(t)

	// .pdf name, but the bytes are not a PDF
	fh := makeFileHeader(t, "fake.pdf", []byte("definitely not a pdf"))

	code, _, _, err := UploadValidator(fh)
	assert.ErrorIs(t, err, ErrFileTypeUnsupported)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUploadValidator_RejectsOversizedFile(t *testing.T) {
	viper.Set("upload.allowed_extensions", []string{".pdf"})
	viper.Set("upload.max_size", int64(16))

	fh := makeFileHeader(t, "big.pdf", pdfBytes)

	code, _, _, err := UploadValidator(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
}

func TestUploadValidator_RejectsNilHeader(t *testing.T) {
	setupUploadConfig(t)

	code, _, _, err := UploadValidator(nil)
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUploadValidator_RejectsOverlongName(t *testing.T) {
	setupUploadConfig(t)

	fh := makeFileHeader(t, strings.Repeat("n", 252)+".pdf", pdfBytes)

	code, _, _, err := UploadValidator(fh)
	assert.ErrorIs(t, err, ErrFileNameTooLong)
	assert.Equal(t, http.StatusBadRequest, code)
}
