package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Operational helpers for provisioning local models. These report status
// tuples instead of returning errors: an unreachable server or a failed pull
// is a recoverable condition, not a pipeline failure.

const (
	healthProbeTimeout = 5 * time.Second
	pullTimeout        = 10 * time.Minute
)

// pullTool is the server CLI used to download models. Package variable so
// tests can exercise the missing-binary path.
var pullTool = "ollama"

// errUnexpectedStatus marks a reachable server answering with a non-200, as
// opposed to a transport failure.
var errUnexpectedStatus = errors.New("unexpected status")

type serverTags struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func fetchServerTags(baseURL string) (*serverTags, error) {
	client := resty.New().SetTimeout(healthProbeTimeout)
	tags := &serverTags{}
	resp, err := client.R().SetResult(tags).Get(strings.TrimSuffix(baseURL, "/") + "/api/tags")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w %d", errUnexpectedStatus, resp.StatusCode())
	}
	return tags, nil
}

// CheckServerHealth probes GET {base_url}/api/tags and reports whether the
// local model server is up, along with a human-readable status message.
func CheckServerHealth(baseURL string) (bool, string) {
	tags, err := fetchServerTags(baseURL)
	if err != nil {
		if errors.Is(err, errUnexpectedStatus) {
			return false, fmt.Sprintf("Ollama returned %s", err)
		}
		return false, fmt.Sprintf("Ollama server not reachable at %s. Start with: ollama serve", baseURL)
	}
	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	listed := strings.Join(names, ", ")
	if listed == "" {
		listed = "none"
	}
	return true, fmt.Sprintf("Ollama running with %d model(s): %s", len(tags.Models), listed)
}

// CheckServerModel reports whether a model matching name is available on the
// server. Probe failures count as unavailable.
func CheckServerModel(name, baseURL string) bool {
	tags, err := fetchServerTags(baseURL)
	if err != nil {
		return false
	}
	for _, m := range tags.Models {
		if strings.Contains(m.Name, name) {
			return true
		}
	}
	return false
}

// PullModel downloads a model via the server CLI. A missing binary and a
// timeout are reported as distinct messages.
func PullModel(name string) (bool, string) {
	ctx, cancel := context.WithTimeout(context.Background(), pullTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, pullTool, "pull", name)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return false, fmt.Sprintf("Timed out pulling %s (>10 min)", name)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return false, fmt.Sprintf("%s CLI not found. Install from: https://ollama.com", pullTool)
		}
		return false, fmt.Sprintf("Failed to pull %s: %s", name, strings.TrimSpace(string(out)))
	}
	return true, fmt.Sprintf("Successfully pulled %s", name)
}

// ValidateModelPath checks that a GGUF model file exists, has the expected
// extension, and is readable.
func ValidateModelPath(path string) (bool, string) {
	if path == "" {
		return false, "No model path provided"
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false, fmt.Sprintf("File not found: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gguf") {
		return false, fmt.Sprintf("File does not have .gguf extension: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Sprintf("File not readable: %s", path)
	}
	f.Close()

	sizeGB := float64(info.Size()) / (1 << 30)
	return true, fmt.Sprintf("Valid GGUF file (%.1f GB)", sizeGB)
}

// EstimateMemoryGB estimates inference RAM from the GGUF file size. Runtime
// memory lands around 1.1-1.2x the file size.
func EstimateMemoryGB(path string) (float64, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return math.Round(float64(info.Size())*1.15/(1<<30)*10) / 10, true
}
