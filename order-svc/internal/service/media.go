package service

import (
	"net/url"
	"strings"
)

// MediaResolver turns a stored image reference into a URL clients can fetch.
type MediaResolver interface {
	URL(ref string) string
}

type BaseURLResolver struct {
	BaseURL string
}

func (r BaseURLResolver) URL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	u, err := url.JoinPath(r.BaseURL, ref)
	if err != nil {
		return ref
	}
	return u
}
