// File: path.go
// Title: Path Components
// Description: Slash-path helpers. A leading "/" is its own component, trailing
//              slashes are ignored and a leading dot does not start an extension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"net/url"
	"strings"
)

// standardize collapses repeated slashes and drops a trailing slash
func standardize(p string) string {
	if p == "" {
		return ""
	}
	var b strings.Builder
	prevSlash := false
	for _, r := range p {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > 1 {
		out = strings.TrimSuffix(out, "/")
	}
	return out
}

// PathComponents splits p into components; "/tmp/scratch" is ["/", "tmp", "scratch"]
func PathComponents(p string) []string {
	if p == "" {
		return []string{}
	}
	var components []string
	if strings.HasPrefix(p, "/") {
		components = append(components, "/")
	}
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

// LastPathComponent returns the final component: "/tmp/" is "tmp", "/" is "/"
func LastPathComponent(p string) string {
	p = standardize(p)
	if p == "/" || p == "" {
		return p
	}
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// DeletingLastPathComponent drops the final component: "/tmp/scratch.tiff" is
// "/tmp", "/tmp" is "/", "scratch.tiff" is ""
func DeletingLastPathComponent(p string) string {
	p = standardize(p)
	if p == "/" || p == "" {
		return p
	}
	i := strings.LastIndex(p, "/")
	switch {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	default:
		return p[:i]
	}
}

// PathExtension returns the extension of the last component without the dot
func PathExtension(p string) string {
	last := LastPathComponent(p)
	i := strings.LastIndex(last, ".")
	if i <= 0 || i == len(last)-1 {
		return ""
	}
	return last[i+1:]
}

// DeletingPathExtension removes the extension of the last component
func DeletingPathExtension(p string) string {
	std := standardize(p)
	ext := PathExtension(std)
	if ext == "" {
		return std
	}
	return strings.TrimSuffix(std, "."+ext)
}

// AppendingPathComponent joins component onto p with a single slash
func AppendingPathComponent(p, component string) string {
	switch {
	case p == "":
		return standardize(component)
	case component == "":
		return standardize(p)
	}
	return standardize(strings.TrimSuffix(p, "/") + "/" + strings.TrimPrefix(component, "/"))
}

// AppendingPathExtension appends "."+ext to the last component. It fails for an
// empty path, the root, or an extension containing a slash.
func AppendingPathExtension(p, ext string) (string, bool) {
	std := standardize(p)
	if std == "" || std == "/" || strings.Contains(ext, "/") {
		return "", false
	}
	return std + "." + ext, true
}

// URL parses s as an absolute or relative URL. Empty strings and strings with
// unescaped spaces or control characters are rejected.
func URL(s string) (*url.URL, bool) {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	return u, true
}
