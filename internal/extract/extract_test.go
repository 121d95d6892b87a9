package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestFromFile_PlainText(t *testing.T) {
	path := writeDoc(t, "resume.txt", "Senior Go developer with AWS experience")

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Senior Go developer with AWS experience" {
		t.Errorf("text altered: %q", got)
	}
}

func TestFromFile_Markdown(t *testing.T) {
	path := writeDoc(t, "resume.md", "# Skills\n\n- Go\n- Kubernetes\n")

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Markdown is passed through as-is; the matcher handles raw text fine.
	if !strings.Contains(got, "- Kubernetes") {
		t.Errorf("markdown content lost: %q", got)
	}
}

func TestFromFile_HTML(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body><h1>Jane Doe</h1><script>track()</script><p>Python and  Docker</p></body></html>`
	path := writeDoc(t, "resume.html", html)

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jane Doe Python and Docker" {
		t.Errorf("unexpected extracted text: %q", got)
	}
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	path := writeDoc(t, "resume.pdf", "%PDF-1.4")

	if _, err := FromFile(path); err == nil {
		t.Fatal("expected error for .pdf, got nil")
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
