package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitLLMLoggerUsesConfiguredPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "traces", "llm.log")

	logger := initLLMLogger(logPath)
	logger.Printf("[DEBUG] trace line")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("configured log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestInitLLMLoggerEmptyPathFallsBack(t *testing.T) {
	// Run from a temp dir so the fallback logs/ directory is sandboxed.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	logger := initLLMLogger("")
	logger.Printf("fallback line")

	if _, err := os.Stat(filepath.Join("logs", "llm_rag.log")); err != nil {
		t.Errorf("fallback log file not created: %v", err)
	}
}
