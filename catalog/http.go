package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultRecordsPath selects the record list in a fetched catalog document.
const DefaultRecordsPath = "$.parts"

// HTTPSource fetches a JSON catalog from a remote endpoint and extracts
// part records from it with a jsonpath expression, so the source can adapt
// to whatever envelope the remote catalog uses.
type HTTPSource struct {
	URL    string
	Path   string // jsonpath to the record list; DefaultRecordsPath when empty
	Client *http.Client
}

// Fetch downloads and parses the catalog. Records with an empty name or a
// non-positive quantity are skipped rather than failing the whole fetch.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Record, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	var jobj any
	if err := jwget(ctx, client, s.URL, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving catalog: %w", err)
	}

	path := s.Path
	if path == "" {
		path = DefaultRecordsPath
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("catalog path %q does not select a list", path)
	}

	var records []Record
	for _, item := range jlist {
		jmap, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rec := Record{
			Name:     asString(jmap["name"]),
			Quantity: int64(asFloat(jmap["quantity"])),
			Price:    asFloat(jmap["price"]),
		}
		if rec.Name == "" || rec.Quantity <= 0 {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

// jwget GETs addr and decodes the JSON response body into data.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
