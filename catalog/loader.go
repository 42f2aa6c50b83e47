package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/yenrise/milcolores-api/models"
)

// LoadError reports a transport-level failure fetching the catalog.
type LoadError struct {
	URL    string
	Status int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog fetch %s: unexpected status %d", e.URL, e.Status)
}

// ParseError reports malformed catalog JSON. Offset is the approximate
// byte position of the syntax fault and Excerpt the surrounding text, so
// the broken spot can be found without opening a debugger.
type ParseError struct {
	Offset  int64
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("catalog parse: %v", e.Err)
	}
	return fmt.Sprintf("catalog parse: %v (near byte %d: %q)", e.Err, e.Offset, e.Excerpt)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the product catalog from rawURL, which is either an http(s)
// URL or a local file path. Remote fetches get a cache-busting query
// parameter appended so a stale copy is never served. There is no retry:
// a failed load leaves the caller with an empty catalog.
func Load(ctx context.Context, rawURL string) ([]models.Product, error) {
	var body []byte
	var err error
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		body, err = fetch(ctx, rawURL)
	} else {
		body, err = os.ReadFile(rawURL)
		err = errors.Wrap(err, "catalog read")
	}
	if err != nil {
		return nil, err
	}
	return parse(body)
}

func fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "catalog url")
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "catalog request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "catalog fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &LoadError{URL: rawURL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	return body, errors.Wrap(err, "catalog body")
}

func parse(body []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		perr := &ParseError{Err: err}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) {
			perr.Offset = syntaxErr.Offset
		} else if errors.As(err, &typeErr) {
			perr.Offset = typeErr.Offset
		}
		if perr.Offset > 0 {
			perr.Excerpt = excerpt(body, perr.Offset)
		}
		return nil, perr
	}
	return products, nil
}

// excerpt returns up to 20 bytes either side of the fault position.
func excerpt(body []byte, offset int64) string {
	start := offset - 20
	if start < 0 {
		start = 0
	}
	end := offset + 20
	if end > int64(len(body)) {
		end = int64(len(body))
	}
	return string(body[start:end])
}
