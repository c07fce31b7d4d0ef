package pasta

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.followtheprocess.codes/pasta/internal/syntax/syntaxtest"
	"go.followtheprocess.codes/pasta/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestSources(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"a.pas",
		"b.PP",
		"notes.txt",
		filepath.Join("sub", "c.dpr"),
		filepath.Join("sub", "d.lpr"),
		filepath.Join("sub", "deeper", "e.inc"),
		filepath.Join("sub", "deeper", "f.go"),
	} {
		path := filepath.Join(dir, name)
		test.Ok(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.Ok(t, os.WriteFile(path, nil, 0o644))
	}

	got, err := sources(dir)
	test.Ok(t, err)

	want := []string{
		filepath.Join(dir, "a.pas"),
		filepath.Join(dir, "b.PP"),
		filepath.Join(dir, "sub", "c.dpr"),
		filepath.Join(dir, "sub", "d.lpr"),
		filepath.Join(dir, "sub", "deeper", "e.inc"),
	}

	test.EqualFunc(t, got, want, slices.Equal)

	// Every .pas file found by the generic walker must also be found here
	for file, err := range syntaxtest.AllFilesWithExtension(dir, ".pas") {
		test.Ok(t, err)
		test.True(t, slices.Contains(got, file), test.Context("%s missing from sources", file))
	}
}

func TestIsSource(t *testing.T) {
	tests := []struct {
		path string // Path to classify
		want bool   // Whether it should be Pascal source
	}{
		{path: "main.pas", want: true},
		{path: "unit.pp", want: true},
		{path: "project.dpr", want: true},
		{path: "project.lpr", want: true},
		{path: "defs.inc", want: true},
		{path: filepath.Join("dir", "LOUD.PAS"), want: true},
		{path: "notes.txt", want: false},
		{path: "pas", want: false},
		{path: "main.pas.bak", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			test.Equal(t, isSource(tt.path), tt.want)
		})
	}
}

func TestSourcesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anything.txt")
	test.Ok(t, os.WriteFile(path, nil, 0o644))

	got, err := sources(path)
	test.Ok(t, err)
	test.EqualFunc(t, got, []string{path}, slices.Equal)
}

func TestSourcesMissing(t *testing.T) {
	_, err := sources(filepath.Join(t.TempDir(), "nope"))
	test.Err(t, err)
}

func TestDiagnose(t *testing.T) {
	src, err := lex(filepath.Join("testdata", "check", "invalid", "quote.pas"))
	test.Ok(t, err)
	test.Err(t, src.err)

	file, tokens, diag := register(token.NewCodeMap(), src)
	test.Equal(t, len(tokens), 0)
	test.True(t, diag != nil)
	test.Equal(t, diag.Position.Name, file.Name())
	test.Equal(t, diag.Position.Line, 4)
	test.Equal(t, diag.Position.StartCol, 11)
	test.Equal(t, diag.Excerpt, "  writeln('not yet');")
	test.Equal(t, diag.Msg, `unknown character '\''`)
}
