package cli

import (
	"strings"
	"testing"
)

func TestShowRequiresArg(t *testing.T) {
	_, err := executeCommand("show")
	if err == nil {
		t.Fatal("expected error for missing argument")
	}
}

func TestShowRejectsExtraArgs(t *testing.T) {
	_, err := executeCommand("show", "india", "japan")
	if err == nil {
		t.Fatal("expected error for extra arguments")
	}
}

func TestResolveRequiresFlags(t *testing.T) {
	_, err := executeCommand("resolve")
	if err == nil {
		t.Fatal("expected error for missing flags")
	}
	if !strings.Contains(err.Error(), "required flag") {
		t.Errorf("error = %v", err)
	}
}

func TestExportRequiresFlags(t *testing.T) {
	_, err := executeCommand("export", "--origin", "india")
	if err == nil {
		t.Fatal("expected error for missing flags")
	}
}

func TestQueryRequiresNameAndDest(t *testing.T) {
	_, err := executeCommand("query", "--contact", "+91 1")
	if err == nil {
		t.Fatal("expected error for missing flags")
	}
}

func TestCountriesRejectsArgs(t *testing.T) {
	_, err := executeCommand("countries", "extra")
	if err == nil {
		t.Fatal("expected error for unexpected argument")
	}
}

func TestVersionRuns(t *testing.T) {
	_, err := executeCommand("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
