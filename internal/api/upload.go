package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// ProgressFunc receives upload progress as a 0-100 percentage.
type ProgressFunc func(percentage int)

// UploadFile performs a multipart POST streaming the file under the given
// form field, reporting progress as the transport consumes file bytes.
// Additional form fields are sent alongside the file.
func (c *Client) UploadFile(ctx context.Context, path, field, filename string, file io.Reader, size int64, extra map[string]string, onProgress ProgressFunc, out interface{}) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		var src io.Reader = file
		if onProgress != nil && size > 0 {
			src = &progressReader{r: file, total: size, report: onProgress}
		}

		for key, value := range extra {
			if err := mw.WriteField(key, value); err != nil {
				pw.CloseWithError(err)
				return
			}
		}

		part, err := mw.CreateFormFile(field, filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path).String(), pr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.do(req, out); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}

// progressReader counts bytes read from the underlying file and reports the
// running percentage, at most once per whole point to keep callbacks cheap.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
