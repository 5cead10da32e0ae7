package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/deptree/pkg/errors"
)

const sampleDump = `{
  "root": "a:b:1",
  "nodes": {
    "a:b:1": {"children": ["c:d:2", "e:f:3"], "configurations": ["implementation"]},
    "c:d:2": {"children": [], "configurations": ["compileClasspath"]},
    "x:y:9": {}
  }
}`

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if g.Root() != "a:b:1" {
		t.Errorf("Root() = %q, want a:b:1", g.Root())
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	children := g.Children("a:b:1")
	if len(children) != 2 || children[0] != "c:d:2" || children[1] != "e:f:3" {
		t.Errorf("Children(a:b:1) = %v, want [c:d:2 e:f:3] in order", children)
	}
	if cfg := g.Configurations("c:d:2"); len(cfg) != 1 || cfg[0] != "compileClasspath" {
		t.Errorf("Configurations(c:d:2) = %v", cfg)
	}
	if n := g.Node("x:y:9"); len(n.Children) != 0 || len(n.Configurations) != 0 {
		t.Errorf("node without keys should default to empty, got %+v", n)
	}
	if g.Has("e:f:3") {
		t.Error("e:f:3 is only referenced as a child and should have no entry")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"invalid json", `{"root": `, "parse input"},
		{"not an object", `[1, 2]`, "parse input"},
		{"missing root", `{"nodes": {}}`, `missing "root"`},
		{"null root", `{"root": null, "nodes": {}}`, `missing "root"`},
		{"empty root", `{"root": "", "nodes": {}}`, `missing "root"`},
		{"missing nodes", `{"root": "a:b:1"}`, `missing "nodes"`},
		{"null nodes", `{"root": "a:b:1", "nodes": null}`, `missing "nodes"`},
		{"wrong children type", `{"root": "a:b:1", "nodes": {"a:b:1": {"children": "c"}}}`, "parse input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadJSON() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestReadJSONEmptyNodes(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(`{"root": "a:b:1", "nodes": {}}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
}

func TestImportJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.json")
	if err := os.WriteFile(path, []byte(sampleDump), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if g.Root() != "a:b:1" {
		t.Errorf("Root() = %q", g.Root())
	}
}

func TestImportJSONNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := ImportJSON(path)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("error = %v, want FILE_NOT_FOUND", err)
	}
	if got, want := errors.UserMessage(err), "File not found: "+path; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestImportJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"nodes": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportJSON(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the file", err)
	}
}
