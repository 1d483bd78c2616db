package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestSolveE2E tests the solve command end-to-end
func TestSolveE2E(t *testing.T) {
	config := filepath.Join(t.TempDir(), "diode.cir")
	if err := os.WriteFile(config, []byte("vs 3.3\nr 470\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "canonical circuit",
			args: []string{"solve"},
			wantContain: []string{
				"Newton–Raphson Iteration Results:",
				"Diode voltage (Vd): 0.5",
				"Converged after",
			},
		},
		{
			name:        "json record",
			args:        []string{"solve", "--json"},
			wantContain: []string{`"converged": true`, `"records"`},
		},
		{
			name:        "config file with override",
			args:        []string{"solve", "--config", config, "--r", "1000"},
			wantContain: []string{"Converged after"},
		},
		{
			name:        "temperature",
			args:        []string{"solve", "--temp", "350"},
			wantContain: []string{"Converged after"},
		},
		{
			name:        "budget exhausted",
			args:        []string{"solve", "--max-iter", "2"},
			wantContain: []string{"Not converged after 2 iteration(s)"},
		},
		{
			name:    "strict non-convergence",
			args:    []string{"solve", "--max-iter", "2", "--strict"},
			wantErr: true,
		},
		{
			name:    "invalid tolerance",
			args:    []string{"solve", "--tol", "0"},
			wantErr: true,
		},
		{
			name:    "negative max iterations",
			args:    []string{"solve", "--max-iter", "-1"},
			wantErr: true,
		},
		{
			name:    "invalid ideality factor",
			args:    []string{"solve", "--n", "0"},
			wantErr: true,
		},
		{
			name:    "vt and temp together",
			args:    []string{"solve", "--vt", "0.025", "--temp", "300"},
			wantErr: true,
		},
		{
			name:    "missing config",
			args:    []string{"solve", "--config", filepath.Join(t.TempDir(), "missing.cir")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v\noutput:\n%s", err, tt.wantErr, out)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestSolveJSONShape(t *testing.T) {
	out, err := execute("solve", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Values  []float64 `json:"values"`
		Records []struct {
			Iteration int `json:"iteration"`
		} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(doc.Records) != len(doc.Values)-1 || doc.Values[0] != 0.7 {
		t.Errorf("unexpected trace: %+v", doc)
	}
}

func TestPlotE2E(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cobweb.png", "cobweb.svg"} {
		output := filepath.Join(dir, name)
		out, err := execute("plot", "-o", output, "--dpi", "72")
		if err != nil {
			t.Fatalf("%s: %v\n%s", name, err, out)
		}
		if !strings.Contains(out, "Cobweb diagram saved as") {
			t.Errorf("output missing save message:\n%s", out)
		}
		if info, err := os.Stat(output); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestChartE2E(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cobweb.html")
	out, err := execute("chart", "-o", output, "--samples", "50")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "echarts") {
		t.Error("page does not reference echarts")
	}
}
