package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/carousel"
	"github.com/milele-cleaning/milele/internal/config"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/session"
	"github.com/milele-cleaning/milele/internal/tui"
	"github.com/milele-cleaning/milele/internal/ui"
)

func TestNewDependencies_WiresServices(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDependencies(Overrides{ConfigDir: dir, APIURL: "http://example.test/", NonInteractive: true})
	if err != nil {
		t.Fatalf("NewDependencies() error = %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if d.Account == nil || d.API == nil || d.Theme == nil || d.Logger == nil {
		t.Fatal("services not wired")
	}
	if got := d.API.BaseURL(); got != "http://example.test" {
		t.Errorf("BaseURL() = %q", got)
	}
	if !d.Headless.IsHeadless() {
		t.Error("--non-interactive should force headless")
	}
	fs, ok := d.Sessions.(*session.FileStore)
	if !ok {
		t.Fatalf("Sessions = %T, want *session.FileStore", d.Sessions)
	}
	if want := filepath.Join(dir, session.FileName); fs.Path() != want {
		t.Errorf("session path = %q, want %q", fs.Path(), want)
	}
	if d.Config.Dir() != dir {
		t.Errorf("config dir = %q, want %q", d.Config.Dir(), dir)
	}
}

func TestEnsure_NoopWhenWired(t *testing.T) {
	store := session.NewMemoryStore()
	svc := account.NewService(nil, store, nil)
	d := &Dependencies{Account: svc, Sessions: store}

	if err := d.Ensure(Overrides{ConfigDir: "/nonexistent"}); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if d.Account != svc || d.Config != nil {
		t.Error("Ensure should leave prepared dependencies alone")
	}
}

func TestEnsure_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	sections := config.SectionsDir(dir)
	if err := os.MkdirAll(sections, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := "carousel:\n  auto_advance_ms: -5\n"
	if err := os.WriteFile(filepath.Join(sections, "carousel.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewDependencies(Overrides{ConfigDir: dir}); err == nil {
		t.Fatal("NewDependencies() should reject an invalid carousel section")
	}
}

func TestNewLogger_Discard(t *testing.T) {
	logger, closer, err := newLogger(config.SystemConfig{LogLevel: "debug"}, t.TempDir())
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if closer != nil {
		t.Error("closer should be nil without a log file")
	}
	logger.Info("dropped")
}

func TestNewLogger_JSONFile(t *testing.T) {
	dir := t.TempDir()
	sys := config.SystemConfig{LogLevel: "warn", LogFormat: "json", LogFile: "logs/milele.log"}

	logger, closer, err := newLogger(sys, dir)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("below level")
	logger.Warn("quote failed", "status", 500)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	path := filepath.Join(dir, "logs", "milele.log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1:\n%s", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "quote failed" || rec["level"] != "WARN" {
		t.Errorf("record = %v", rec)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("log file mode = %o, want 600", perm)
	}
}

func TestCarouselOptions(t *testing.T) {
	got := carouselOptions(config.CarouselConfig{
		AutoAdvanceMS:   3000,
		TransitionMS:    400,
		ReenableDelayMS: 10,
		CellWidthPx:     9,
		BreakpointMD:    700,
		BreakpointLG:    1000,
	})
	want := tui.DefaultCarouselOptions()
	want.AutoAdvance = 3 * time.Second
	want.Transition = 400 * time.Millisecond
	want.ReenableDelay = 10 * time.Millisecond
	want.CellWidthPx = 9
	want.Breakpoints = carousel.Breakpoints{MD: 700, LG: 1000}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("carouselOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestCarouselOptions_DefaultsRoundTrip(t *testing.T) {
	got := carouselOptions(config.NewDefaultCarouselConfig())
	if diff := cmp.Diff(tui.DefaultCarouselOptions(), got); diff != "" {
		t.Errorf("default config should map to default options (-want +got):\n%s", diff)
	}
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"s3cret\n", "s3cret"},
		{"s3cret\r\nignored\n", "s3cret"},
		{"no-newline", "no-newline"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := readPassword(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("readPassword(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("readPassword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderResult(t *testing.T) {
	theme := ui.NewTheme(true)

	ok := renderResult(theme, account.Result{Status: form.StatusSuccess}, "Done")
	if !strings.Contains(ok, "✓ Done") {
		t.Errorf("success card = %q", ok)
	}

	errs := form.Quote{Email: "bad"}.Validate()
	failed := renderResult(theme, account.Result{
		Status:  form.StatusError,
		Message: account.ValidationHint,
		Fields:  errs,
	}, "Done")
	for _, want := range []string{"✗ " + account.ValidationHint, "email: Invalid email"} {
		if !strings.Contains(failed, want) {
			t.Errorf("error card missing %q:\n%s", want, failed)
		}
	}
}

func TestRenderKeyValueLines_Aligns(t *testing.T) {
	got := renderKeyValueLines(ui.NewTheme(true), []kvPair{{"Name", "Amina"}, {"Session", "/tmp/s"}})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if strings.Index(lines[0], "Amina") != strings.Index(lines[1], "/tmp/s") {
		t.Errorf("values not aligned:\n%s", got)
	}
}
