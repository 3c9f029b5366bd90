package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// est-hello prints the settings it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvDataDir, EnvDataDir, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "est-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write est-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile est-hello: %v", err)
	}

	estBinaryPath := filepath.Join(tempDir, "est")
	build = exec.Command("go", "build", "-o", estBinaryPath, "../est")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile est binary: %v", err)
	}

	expectedDataDir := filepath.Join(tempDir, "data")
	args := []string{
		"-data-dir", expectedDataDir,
		"-currency", "eur",
		"-v",
		"hello", "a", "b",
	}

	estCmd := exec.Command(estBinaryPath, args...)
	estCmd.Dir = tempDir
	estCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	estCmd.Stdout = &stdout
	estCmd.Stderr = &stderr
	if err := estCmd.Run(); err != nil {
		t.Fatalf("est command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvDataDir + "=" + expectedDataDir,
		EnvCurrency + "=EUR",
		EnvVerbose + "=true",
		"args=[a b]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}

	// an unknown command without extension is reported by the commander.
	estCmd = exec.Command(estBinaryPath, "nope")
	estCmd.Dir = tempDir
	estCmd.Env = []string{"PATH=" + tempDir}
	if err := estCmd.Run(); err == nil {
		t.Errorf("est nope succeeded, want a failure")
	}
}
