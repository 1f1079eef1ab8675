package recordstore

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload stores a file in one of the server's buckets and returns its
// public URL.
func (c *Client) Upload(ctx context.Context, bucket, filename string, r io.Reader) (string, error) {
	fail := func(err error) error {
		return &Failure{Verb: "upload", Resource: filename, Err: err}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("bucket", bucket); err != nil {
		return "", fail(err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fail(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fail(err)
	}
	if err := w.Close(); err != nil {
		return "", fail(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "upload", nil, &buf)
	if err != nil {
		return "", fail(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(req, "upload", filename, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
