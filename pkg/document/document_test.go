package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlatSection(t *testing.T) {
	content := []byte(`
pools:
  - kind: mac
    name: "mac-a "
    from: "00:25:B5:99:00:00"
    to: "00:25:B5:99:00:FF  "
`)

	doc, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sec, ok := doc.Section("pools")
	if !ok {
		t.Fatal("pools section not found")
	}
	if len(sec.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sec.Entries))
	}

	entry := sec.Entries[0]
	if entry.Attr("name") != "mac-a" {
		t.Errorf("name = %q, expected trailing whitespace trimmed", entry.Attr("name"))
	}
	if entry.Attr("to") != "00:25:B5:99:00:FF" {
		t.Errorf("to = %q, expected trimmed value", entry.Attr("to"))
	}
	if entry.Attr("missing") != "" {
		t.Error("absent attribute should read as empty string")
	}
}

func TestParseNestedSection(t *testing.T) {
	content := []byte(`
bootPolicies:
  - name: bp-1
    org: root
    devices:
      - type: local
        device1: cdrom
      - type: storage
        device1: "20:00:00:25:B5:00:00:01"
        device2: "20:00:00:25:B5:00:00:02"
        fabric: A
`)

	doc, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sec, _ := doc.Section("bootPolicies")
	if len(sec.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sec.Entries))
	}

	devices := sec.Entries[0].Children["devices"]
	if len(devices) != 2 {
		t.Fatalf("expected 2 device rows, got %d", len(devices))
	}
	if devices[0].Attr("type") != "local" {
		t.Errorf("first device type = %q", devices[0].Attr("type"))
	}
	if devices[1].Attr("fabric") != "A" {
		t.Errorf("second device fabric = %q", devices[1].Attr("fabric"))
	}
}

func TestParseSectionOrder(t *testing.T) {
	content := []byte(`
vlans:
  - name: v1
    fabric: common
    tagA: 100
pools:
  - kind: mac
    name: p1
`)

	doc, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	names := doc.SectionNames()
	if len(names) != 2 || names[0] != "vlans" || names[1] != "pools" {
		t.Errorf("SectionNames() = %v, expected document order", names)
	}
}

func TestParseRejectsDuplicateSection(t *testing.T) {
	content := []byte(`
pools:
  - name: a
pools:
  - name: b
`)

	if _, err := Parse(content); err == nil {
		t.Error("expected error for duplicate section")
	}
}

func TestParseRejectsNonListSection(t *testing.T) {
	content := []byte(`
pools: just-a-string
`)

	if _, err := Parse(content); err == nil {
		t.Error("expected error for scalar section value")
	}
}

func TestParseNullSection(t *testing.T) {
	content := []byte(`
pools:
vlans:
  - name: v1
`)

	doc, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sec, ok := doc.Section("pools")
	if !ok {
		t.Fatal("null section should still be registered")
	}
	if len(sec.Entries) != 0 {
		t.Errorf("null section should have no entries, got %d", len(sec.Entries))
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("pools: [unclosed")); err == nil {
		t.Error("expected error for unparsable document")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Error("expected error when fabric.yaml is missing")
	}
}

func TestLoadYmlFallback(t *testing.T) {
	dir := t.TempDir()
	content := []byte("vlans:\n  - name: v1\n")
	if err := os.WriteFile(filepath.Join(dir, "fabric.yml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := doc.Section("vlans"); !ok {
		t.Error("vlans section not loaded from fabric.yml")
	}
}
