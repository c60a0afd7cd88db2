package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestFromUploadText(t *testing.T) {
	text, err := FromUpload("notes.txt", []byte("  Alice: ship it. Bob: agreed.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Alice: ship it. Bob: agreed." {
		t.Fatalf("expected trimmed transcript, got %q", text)
	}
}

func TestFromUploadExtensionCaseInsensitive(t *testing.T) {
	text, err := FromUpload("NOTES.TXT", []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Fatalf("expected %q, got %q", "hello", text)
	}
}

func TestFromUploadUnsupportedType(t *testing.T) {
	cases := []string{"notes.docx", "notes", "notes.txt.exe"}
	for _, name := range cases {
		if _, err := FromUpload(name, []byte("content")); !errors.Is(err, ErrUnsupportedType) {
			t.Fatalf("%s: expected ErrUnsupportedType, got %v", name, err)
		}
	}
}

func TestFromUploadInvalidUTF8(t *testing.T) {
	if _, err := FromUpload("notes.txt", []byte{0xff, 0xfe, 0xfd}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestFromUploadEmptyText(t *testing.T) {
	if _, err := FromUpload("notes.txt", []byte("   \n\t  ")); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFromUploadBrokenPDF(t *testing.T) {
	_, err := FromUpload("scan.pdf", []byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for broken PDF")
	}
	if !strings.Contains(err.Error(), "PDF") && !errors.Is(err, ErrNoText) {
		t.Fatalf("expected a PDF extraction error, got %v", err)
	}
}
