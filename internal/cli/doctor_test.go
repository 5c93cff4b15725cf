package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/terminalsin/no-cluely/internal/config"
)

func TestCheckConfigurationValid(t *testing.T) {
	check := checkConfiguration(config.DefaultRuntimeConfig())

	if check.Err != nil || check.Status != "✓" {
		t.Fatalf("default configuration should pass: %+v", check)
	}
	if !strings.Contains(check.Detail, "identifier(s)") {
		t.Fatalf("detail should mention the identifier count: %q", check.Detail)
	}
}

func TestCheckConfigurationInvalid(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.Format = "xml"

	check := checkConfiguration(cfg)
	if check.Err == nil || check.Status != "✗" {
		t.Fatalf("invalid format should fail the check: %+v", check)
	}
}

func TestCheckPlatformMatchesHost(t *testing.T) {
	check := checkPlatform()

	if runtime.GOOS == "darwin" {
		if check.Err != nil {
			t.Fatalf("platform check should pass on macOS: %+v", check)
		}
		return
	}

	if check.Err == nil {
		t.Fatalf("platform check should fail off macOS: %+v", check)
	}
	if !strings.Contains(check.Detail, "requires macOS") {
		t.Fatalf("detail should explain the macOS requirement: %q", check.Detail)
	}
}

func TestPrintDoctorReport(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	printDoctorReport(cmd, []doctorCheck{
		{Name: "Go Runtime", Status: "✓", Detail: "Version go1.22"},
		{Name: "Window Server", Status: "✗", Detail: "Query failed"},
	})

	out := buf.String()
	for _, want := range []string{"Check", "Status", "Detail", "Go Runtime", "Window Server", "Query failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCommandPrintsChecks(t *testing.T) {
	cmd := newDoctorCmd(emptyLoader(t))

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	// The verdict tracks the host: off macOS the platform check fails and the
	// command reports failure, while the report itself is always printed.
	if runtime.GOOS != "darwin" && err == nil {
		t.Fatal("doctor should fail off macOS")
	}

	out := buf.String()
	for _, want := range []string{"Go Runtime", "Platform", "Configuration"} {
		if !strings.Contains(out, want) {
			t.Fatalf("doctor report missing %q check:\n%s", want, out)
		}
	}
}
