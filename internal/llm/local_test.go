package llm

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateModelPath(t *testing.T) {
	dir := t.TempDir()
	gguf := filepath.Join(dir, "model.gguf")
	if err := os.WriteFile(gguf, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	wrongExt := filepath.Join(dir, "model.bin")
	if err := os.WriteFile(wrongExt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		path    string
		ok      bool
		wantMsg string
	}{
		{"empty", "", false, "No model path provided"},
		{"missing", "/no/such/model.gguf", false, "File not found: /no/such/model.gguf"},
		{"directory", dir, false, "File not found: " + dir},
		{"wrong extension", wrongExt, false, "File does not have .gguf extension: " + wrongExt},
		{"valid", gguf, true, "Valid GGUF file"},
	}
	for _, tc := range cases {
		ok, msg := ValidateModelPath(tc.path)
		if ok != tc.ok {
			t.Errorf("%s: ok=%v, want %v (%s)", tc.name, ok, tc.ok, msg)
		}
		if !strings.Contains(msg, tc.wantMsg) {
			t.Errorf("%s: message %q does not contain %q", tc.name, msg, tc.wantMsg)
		}
	}
}

func TestEstimateMemoryGB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.gguf")
	size := int64(2 << 30)
	if err := os.WriteFile(path, make([]byte, 0), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Truncate(path, size); err != nil {
		t.Fatal(err)
	}

	got, ok := EstimateMemoryGB(path)
	if !ok {
		t.Fatal("expected ok for existing file")
	}
	if got != 2.3 {
		t.Fatalf("2 GB file: estimated %.1f GB, want 2.3", got)
	}

	if _, ok := EstimateMemoryGB("/no/such/file.gguf"); ok {
		t.Fatal("expected !ok for missing file")
	}
}

func TestCheckServerHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"models":[{"name":"qwen3:8b"},{"name":"qwen3:14b"}]}`)
	}))
	defer srv.Close()

	ok, msg := CheckServerHealth(srv.URL)
	if !ok {
		t.Fatalf("expected healthy, got %q", msg)
	}
	if !strings.Contains(msg, "2 model(s)") || !strings.Contains(msg, "qwen3:8b") {
		t.Fatalf("unexpected status message: %q", msg)
	}
}

func TestCheckServerHealthNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok, msg := CheckServerHealth(srv.URL)
	if ok {
		t.Fatal("expected unhealthy for non-200 response")
	}
	if !strings.Contains(msg, "500") {
		t.Fatalf("message should carry the status code: %q", msg)
	}
	if strings.Contains(msg, "not reachable") {
		t.Fatalf("non-200 must not be reported as a transport failure: %q", msg)
	}
}

func TestCheckServerHealthUnreachable(t *testing.T) {
	ok, msg := CheckServerHealth("http://127.0.0.1:1")
	if ok {
		t.Fatal("expected unhealthy for unreachable server")
	}
	if !strings.Contains(msg, "ollama serve") {
		t.Fatalf("message should suggest starting the server: %q", msg)
	}
}

func TestCheckServerModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"models":[{"name":"qwen3:8b"}]}`)
	}))
	defer srv.Close()

	if !CheckServerModel("qwen3:8b", srv.URL) {
		t.Fatal("expected model to be reported available")
	}
	if CheckServerModel("llama3:70b", srv.URL) {
		t.Fatal("expected missing model to be reported unavailable")
	}
	if CheckServerModel("qwen3:8b", "http://127.0.0.1:1") {
		t.Fatal("probe failure should count as unavailable")
	}
}

func TestPullModelMissingBinary(t *testing.T) {
	orig := pullTool
	pullTool = "definitely-not-a-real-binary-xyz"
	defer func() { pullTool = orig }()

	ok, msg := PullModel("qwen3:8b")
	if ok {
		t.Fatal("expected pull failure with missing binary")
	}
	if !strings.Contains(msg, "CLI not found") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRecommendationsFilterByRAM(t *testing.T) {
	all := Recommendations(32)
	if len(all[TierQuickThink]) != 2 || len(all[TierDeepThink]) != 2 {
		t.Fatalf("32 GB should fit every model: %v", all)
	}

	small := Recommendations(8)
	for _, rec := range small[TierQuickThink] {
		if rec.SizeGB > 8*0.8 {
			t.Errorf("recommendation %s exceeds RAM headroom", rec.Name)
		}
	}
	if len(small[TierDeepThink]) != 0 {
		t.Fatalf("no deep-think model fits in 8 GB: %v", small[TierDeepThink])
	}

	none := Recommendations(1)
	if len(none[TierQuickThink]) != 0 || len(none[TierDeepThink]) != 0 {
		t.Fatal("1 GB should fit nothing")
	}
}
