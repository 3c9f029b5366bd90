package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced blocks with these info strings are run against a freshly built est:
//
//   - "bash setup" starts a new scenario in an empty directory,
//   - "bash run" records its output for the next "console check",
//   - "bash check" must exit with 0.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	bashCheck    = "bash check"
	consoleCheck = "console check"
)

// manualEntry matches the topic list of readme.md, e.g. "* metrics: ...".
var manualEntry = regexp.MustCompile(`^\*\s+([^:]+):`)

func TestTopics(t *testing.T) {
	readme, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("readme.md: %v", err)
	}
	var listed []string
	for _, line := range strings.Split(string(readme), "\n") {
		if m := manualEntry.FindStringSubmatch(line); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme.md lists %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	got, err := GetTopics(All)
	if err != nil {
		t.Fatalf("GetTopics(All) error = %v", err)
	}
	if !strings.Contains(got, "# Metrics") || !strings.Contains(got, "# Storage") {
		t.Errorf("GetTopics(All) misses some topics")
	}
	if _, err := GetTopics("metrics", "nope"); err == nil {
		t.Errorf("GetTopics(nope) succeeded")
	}
}

func TestSnippets(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "est"), "../est/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build est: %v\n%s", err, out)
	}
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")),
		"ESTATE_TESTING_NOW=2006-01-02 15:04:05",
		"ESTATE_CONFIG=", "ESTATE_DATA_DIR=", "ESTATE_CURRENCY=",
	)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			s := scenario{env: env, dir: t.TempDir()}
			for _, sn := range snippets(t, file) {
				s.run(t, sn)
			}
		})
	}
}

// snippet is a runnable fenced block of a markdown file.
type snippet struct {
	kind   string
	script string
	pos    string // file:line
}

func snippets(t *testing.T, file string) []snippet {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("%s: %v", file, err)
	}

	var out []snippet
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(src))
		switch kind {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var script strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			script.Write(line.Value(src))
		}
		line := bytes.Count(src[:fcb.Info.Segment.Start], []byte("\n")) + 1
		out = append(out, snippet{kind: kind, script: script.String(), pos: fmt.Sprintf("%s:%d", file, line)})
		return ast.WalkContinue, nil
	})
	return out
}

// scenario runs the snippets of a file in order, sharing a working dir.
type scenario struct {
	env  []string
	dir  string
	last string // output of the last "bash run"
}

func (s *scenario) run(t *testing.T, sn snippet) {
	t.Helper()
	if sn.kind == consoleCheck {
		want := strings.TrimSpace(sn.script)
		got := strings.ReplaceAll(strings.TrimSpace(s.last), "\t", "        ")
		if got != want {
			t.Errorf("%s: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q", sn.pos, got, want, got, want)
		}
		return
	}
	if sn.kind == bashSetup {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+sn.script)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if sn.kind == bashRun {
		s.last = string(out)
	}
	if err == nil {
		return
	}
	if sn.kind == bashCheck {
		t.Errorf("%s: check failed: %v\n%s", sn.pos, err, out)
		return
	}
	t.Fatalf("%s: %s failed: %v\n%s", sn.pos, sn.kind, err, out)
}
