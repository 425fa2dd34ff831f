package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/acculynx/client-go/internal/apierrors"
)

// ContentTypeFor infers a MIME content type from the filename extension,
// falling back to application/octet-stream.
func ContentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// DoMultipart uploads a file as multipart/form-data to the given v2 API path.
// The file is sent under the "file" form field with a content type inferred
// from the filename; fields are added as plain form values. The body is
// streamed through a pipe so large uploads are never held in memory, which
// also means uploads are not retried: the reader is consumed on the first
// attempt.
func (c *Client) DoMultipart(ctx context.Context, path, filename string, file io.Reader, fields map[string]string, result any) error {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	go func() {
		err := writeMultipartBody(w, filename, file, fields)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, pr)
	if err != nil {
		pr.CloseWithError(err)
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	c.logRequest(http.MethodPost, fullURL, resp.StatusCode, 0, nil)

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}
	return decodeResult(resp, result)
}

func writeMultipartBody(w *multipart.Writer, filename string, file io.Reader, fields map[string]string) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	header.Set("Content-Type", ContentTypeFor(filename))

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
