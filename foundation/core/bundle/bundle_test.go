// File: bundle_test.go
// Title: Resource Bundle Tests
// Description: Tests for resource lookup, localization fallback and decoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial tests

package bundle

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

func fixture() *Bundle {
	return New(fstest.MapFS{
		"about.txt":                 {Data: []byte("root about")},
		"docs/guide.md":             {Data: []byte("# guide")},
		"Base.lproj/greeting.txt":   {Data: []byte("hello")},
		"ja.lproj/greeting.txt":     {Data: []byte("こんにちは")},
		"ja.lproj/docs/guide.md":    {Data: []byte("# ガイド")},
		"de.lproj/Localizable.toml": {Data: []byte(`hello = "Hallo"`)},
		"sjis.txt":                  {Data: []byte{0x82, 0xa0}},
		"broken.txt":                {Data: []byte{0xff, 0xfe, 0xfd}},
		"images/b.png":              {Data: []byte("b")},
		"images/a.png":              {Data: []byte("a")},
	})
}

func TestPath(t *testing.T) {
	b := fixture()

	tests := []struct {
		name   string
		res    string
		ext    string
		opts   []LookupOption
		want   string
		wantOK bool
	}{
		{"root", "about", "txt", nil, "about.txt", true},
		{"dotted ext", "about", ".txt", nil, "about.txt", true},
		{"base fallback", "greeting", "txt", nil, "Base.lproj/greeting.txt", true},
		{"localized", "greeting", "txt", []LookupOption{Localization("ja")}, "ja.lproj/greeting.txt", true},
		{"lproj suffix accepted", "greeting", "txt", []LookupOption{Localization("ja.lproj")}, "ja.lproj/greeting.txt", true},
		{"localized missing", "greeting", "txt", []LookupOption{Localization("fr")}, "", false},
		{"subdirectory", "guide", "md", []LookupOption{Subdirectory("docs")}, "docs/guide.md", true},
		{"localized subdirectory", "guide", "md", []LookupOption{Subdirectory("/docs/"), Localization("ja")}, "ja.lproj/docs/guide.md", true},
		{"first by extension", "", "png", []LookupOption{Subdirectory("images")}, "images/a.png", true},
		{"missing", "nothing", "txt", nil, "", false},
		{"directory is not a resource", "docs", "", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Path(tt.res, tt.ext, tt.opts...)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Path(%q, %q) = %q, %v; want %q, %v", tt.res, tt.ext, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDataAndText(t *testing.T) {
	b := fixture()

	if data, ok := b.Data("about", "txt"); !ok || string(data) != "root about" {
		t.Errorf("Data(about) = %q, %v", data, ok)
	}
	if _, ok := b.Data("missing", "txt"); ok {
		t.Error("Data(missing) reported present")
	}

	if text, ok := b.Text("greeting", "txt", UTF8, Localization("ja")); !ok || text != "こんにちは" {
		t.Errorf("Text(greeting, ja) = %q, %v", text, ok)
	}
	if text, ok := b.Text("sjis", "txt", ShiftJIS); !ok || text != "あ" {
		t.Errorf("Text(sjis) = %q, %v", text, ok)
	}
	if _, ok := b.Text("broken", "txt", UTF8); ok {
		t.Error("invalid UTF-8 decoded as present")
	}
}

func TestLocalizations(t *testing.T) {
	got := fixture().Localizations()
	want := []string{"Base", "de", "ja"}
	if len(got) != len(want) {
		t.Fatalf("Localizations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Localizations()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNilBundle(t *testing.T) {
	var b *Bundle
	if _, ok := b.Path("x", "txt"); ok {
		t.Error("nil bundle resolved a path")
	}
	if b.Localizations() != nil {
		t.Error("nil bundle listed localizations")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if text, ok := b.Text("note", "txt", UTF8); !ok || text != "disk" {
		t.Errorf("Text(note) = %q, %v", text, ok)
	}

	_, err = Open(filepath.Join(dir, "note.txt"))
	if !mdwerror.HasCode(err, mdwerror.CodeResourceUnavailable) {
		t.Errorf("Open(file) error = %v", err)
	}
	_, err = Open(filepath.Join(dir, "absent"))
	if !mdwerror.HasCode(err, mdwerror.CodeResourceUnavailable) {
		t.Errorf("Open(absent) error = %v", err)
	}
}

func TestContentsOfFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(name, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}
	if data, ok := ContentsOfFile(name); !ok || len(data) != 3 {
		t.Errorf("ContentsOfFile = %v, %v", data, ok)
	}
	if _, ok := ContentsOfFile(name + ".missing"); ok {
		t.Error("missing file reported present")
	}
}

func TestParseEncoding(t *testing.T) {
	tests := map[string]Encoding{
		"UTF-8":        UTF8,
		"shift_jis":    ShiftJIS,
		"EUC-JP":       EUCJP,
		"latin1":       Latin1,
		"utf16":        UTF16,
		"Windows-1252": Windows1252,
	}
	for in, want := range tests {
		got, err := ParseEncoding(in)
		if err != nil || got != want {
			t.Errorf("ParseEncoding(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEncoding("ebcdic"); err == nil {
		t.Error("ParseEncoding(ebcdic) succeeded")
	}
}
