// Package media turns stored image paths into public URLs.
package media

import (
	"net/url"
	"strings"
)

type Resolver interface {
	URL(path string) string
}

func isAbsolute(path string) bool {
	u, err := url.Parse(path)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// StaticResolver serves images from a fixed base URL. An empty base leaves
// paths site-relative.
type StaticResolver struct {
	base string
}

func NewStaticResolver(base string) StaticResolver {
	return StaticResolver{base: strings.TrimRight(base, "/")}
}

func (s StaticResolver) URL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || isAbsolute(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.base + path
}
