package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Timeout for fetching remote resources.
const fetchTimeout = 30 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// A Resource is a readable stream backed by a local file or a http(s) URL.
// Callers must Close it when done.
type Resource struct {
	io.ReadCloser
	location string

	// Set for remote resources only.
	url *url.URL
}

// Returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.location
}

// Returns the file name of the resource without its directory or URL path.
func (r *Resource) Name() string {
	if r.IsRemote() {
		return path.Base(r.url.Path)
	}
	return filepath.Base(r.location)
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url != nil
}

// Open a resource. Locations of the form scheme://... must use http or https
// and are fetched with a GET request; anything else is a local path.
func Open(location string) (*Resource, error) {
	idx := strings.Index(location, "://")
	if idx == -1 {
		reader, err := os.Open(filepath.Clean(location))
		if err != nil {
			return nil, fmt.Errorf("resource: could not open '%s': %w", location, err)
		}
		return &Resource{ReadCloser: reader, location: location}, nil
	}

	scheme := strings.ToLower(location[:idx])
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", scheme)
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("resource: could not parse '%s': %w", location, err)
	}
	resp, err := httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %s", location, err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: could not fetch '%s': status %d", location, resp.StatusCode)
	}

	return &Resource{
		ReadCloser: resp.Body,
		location:   location,
		url:        u,
	}, nil
}

// Create a resource from a reader.
func FromStream(name string, source io.Reader) *Resource {
	return &Resource{
		ReadCloser: io.NopCloser(source),
		location:   name,
	}
}
