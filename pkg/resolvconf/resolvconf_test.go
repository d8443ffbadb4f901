package resolvconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/latticelabs/latticedns/pkg/names"
)

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")

	err := Generate(path, names.DefaultDomain, []string{"10.147.17.10", "10.147.17.11"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, managedHeader+"\n") {
		t.Errorf("Expected managed header first, got %q", content)
	}
	for _, want := range []string{
		"nameserver 10.147.17.10\n",
		"nameserver 10.147.17.11\n",
		"search domain\n",
		"options ndots:1 timeout:2 attempts:2\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected %q in generated file, got:\n%s", want, content)
		}
	}

	first := strings.Index(content, "nameserver 10.147.17.10")
	second := strings.Index(content, "nameserver 10.147.17.11")
	if first > second {
		t.Error("Expected nameservers in the order given")
	}
}

func TestGenerateRelativeSearchDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")

	err := Generate(path, names.Domain("example."), []string{"10.147.17.10"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "search example\n") {
		t.Errorf("Expected relative search domain, got:\n%s", data)
	}
	if strings.Contains(string(data), "search example.") {
		t.Errorf("Search domain should not carry the trailing dot, got:\n%s", data)
	}
}

func TestGenerateOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	if err := os.WriteFile(path, []byte("nameserver 8.8.8.8\n"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	err := Generate(path, names.DefaultDomain, []string{"10.147.17.10"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "8.8.8.8") {
		t.Errorf("Expected previous content replaced, got:\n%s", data)
	}
}

func TestGenerateCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dns", "resolv.conf")

	err := Generate(path, names.DefaultDomain, []string{"10.147.17.10"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file at %s, stat error: %v", path, err)
	}
}

func TestGenerateMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")

	err := Generate(path, names.DefaultDomain, []string{"10.147.17.10"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestGenerateNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")

	err := Generate(path, names.DefaultDomain, []string{"10.147.17.10"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, ".resolvconf-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Errorf("Expected no temp files left behind, found %v", leftovers)
	}
}

func TestGenerateNoServers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")

	err := Generate(path, names.DefaultDomain, nil)
	if err == nil {
		t.Fatal("Expected error for empty server list")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Expected no file written on error")
	}
}
