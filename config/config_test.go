package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/objmesh/asset/obj"
	"github.com/achilleasa/objmesh/log"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Level() != log.Notice {
		t.Fatalf("expected default level notice; got %s", cfg.Level())
	}

	opts := cfg.ParserOptions()
	if opts.Arity != obj.RetainTrianglesAndQuads || opts.StrictFaces {
		t.Fatalf("unexpected default parser options %+v", opts)
	}
}

func TestParseConfig(t *testing.T) {
	type spec struct {
		input     string
		expArity  obj.ArityPolicy
		expStrict bool
		expLevel  log.Level
	}

	specs := []spec{
		{"", obj.RetainTrianglesAndQuads, false, log.Notice},
		{"log_level: debug\n", obj.RetainTrianglesAndQuads, false, log.Debug},
		{"parser:\n  strict_faces: true\n", obj.RetainTrianglesAndQuads, true, log.Notice},
		{"parser:\n  retain_all_arities: true\n  strict_faces: false\nlog_level: Warning\n", obj.RetainAllArities, false, log.Warning},
	}

	for specIndex, s := range specs {
		cfg, err := Parse([]byte(s.input))
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", specIndex, err)
		}
		opts := cfg.ParserOptions()
		if opts.Arity != s.expArity {
			t.Errorf("[spec %d] expected arity policy %s; got %s", specIndex, s.expArity, opts.Arity)
		}
		if opts.StrictFaces != s.expStrict {
			t.Errorf("[spec %d] expected strict faces to be %t", specIndex, s.expStrict)
		}
		if cfg.Level() != s.expLevel {
			t.Errorf("[spec %d] expected level %s; got %s", specIndex, s.expLevel, cfg.Level())
		}
	}
}

func TestParseConfigErrors(t *testing.T) {
	specs := []string{
		"log_level: chatty\n",
		"parser:\n  strict: true\n",
		"parser: [1, 2]\n",
	}

	for specIndex, input := range specs {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("[spec %d] expected to get an error", specIndex)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "objmesh.yml")
	if err := os.WriteFile(cfgFile, []byte("parser:\n  strict_faces: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Parser.StrictFaces || cfg.LogLevel != "notice" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	missing := filepath.Join(t.TempDir(), "missing.yml")
	_, err = Load(missing)
	if err == nil || !strings.HasPrefix(err.Error(), "config: could not read "+missing) {
		t.Fatalf("expected a read error; got %v", err)
	}
}
