// File: bundle.go
// Title: Resource Bundle
// Description: Read-only resource bundle over an fs.FS. Resources are addressed by
//              name, extension, optional subdirectory and optional localization
//              (<loc>.lproj). Lookups report absence as (zero, false) and never
//              return partial data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bundle

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// BaseLocalization is searched after the unlocalized root when no localization is requested
const BaseLocalization = "Base"

const lprojSuffix = ".lproj"

// Bundle is a read-only collection of resources
type Bundle struct {
	fsys fs.FS
	root string
}

// New creates a bundle over fsys
func New(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys, root: "."}
}

// Open creates a bundle rooted at a directory on disk
func Open(dir string) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, mdwerror.Wrap(err, "resource directory unavailable").
			WithCode(mdwerror.CodeResourceUnavailable).
			WithOperation("bundle.Open").
			WithDetail("dir", dir)
	}
	if !info.IsDir() {
		return nil, mdwerror.New("resource path is not a directory").
			WithCode(mdwerror.CodeResourceUnavailable).
			WithOperation("bundle.Open").
			WithDetail("dir", dir)
	}
	return &Bundle{fsys: os.DirFS(dir), root: dir}, nil
}

// Root returns the directory the bundle was opened from, or "." for an fs.FS bundle
func (b *Bundle) Root() string {
	return b.root
}

// FS exposes the underlying file system
func (b *Bundle) FS() fs.FS {
	return b.fsys
}

// LookupOption narrows a resource lookup
type LookupOption func(*lookup)

type lookup struct {
	subdirectory string
	localization string
}

// Subdirectory restricts the lookup to a directory inside the bundle (or inside the .lproj)
func Subdirectory(dir string) LookupOption {
	return func(l *lookup) {
		l.subdirectory = strings.Trim(dir, "/")
	}
}

// Localization restricts the lookup to <localization>.lproj
func Localization(localization string) LookupOption {
	return func(l *lookup) {
		l.localization = strings.TrimSuffix(localization, lprojSuffix)
	}
}

// Path resolves a resource to its slash-separated path inside the bundle.
// An empty name selects the first file (in lexical order) carrying ext.
func (b *Bundle) Path(name, ext string, opts ...LookupOption) (string, bool) {
	if b == nil || b.fsys == nil {
		return "", false
	}

	var l lookup
	for _, opt := range opts {
		opt(&l)
	}

	ext = strings.TrimPrefix(ext, ".")
	for _, dir := range l.directories() {
		if name == "" {
			if ext == "" {
				continue
			}
			matches, err := fs.Glob(b.fsys, path.Join(dir, "*."+ext))
			if err != nil || len(matches) == 0 {
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				if b.isFile(m) {
					return m, true
				}
			}
			continue
		}

		file := name
		if ext != "" {
			file = name + "." + ext
		}
		candidate := path.Join(dir, file)
		if b.isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Data returns the bytes of a resource
func (b *Bundle) Data(name, ext string, opts ...LookupOption) ([]byte, bool) {
	p, ok := b.Path(name, ext, opts...)
	if !ok {
		return nil, false
	}
	data, err := fs.ReadFile(b.fsys, p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Text returns a resource decoded with enc
func (b *Bundle) Text(name, ext string, enc Encoding, opts ...LookupOption) (string, bool) {
	data, ok := b.Data(name, ext, opts...)
	if !ok {
		return "", false
	}
	return Decode(data, enc)
}

// Localizations lists the .lproj directories at the bundle root, without suffix, sorted
func (b *Bundle) Localizations() []string {
	if b == nil || b.fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(b.fsys, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), lprojSuffix) {
			out = append(out, strings.TrimSuffix(e.Name(), lprojSuffix))
		}
	}
	sort.Strings(out)
	return out
}

func (b *Bundle) isFile(name string) bool {
	info, err := fs.Stat(b.fsys, name)
	return err == nil && !info.IsDir()
}

func (l lookup) directories() []string {
	sub := l.subdirectory
	if sub == "" {
		sub = "."
	}
	if l.localization != "" {
		return []string{path.Join(l.localization+lprojSuffix, sub)}
	}
	return []string{
		path.Clean(sub),
		path.Join(BaseLocalization+lprojSuffix, sub),
	}
}

// ContentsOfFile reads a file from disk. A missing or unreadable file is absent.
func ContentsOfFile(name string) ([]byte, bool) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, false
	}
	return data, true
}
