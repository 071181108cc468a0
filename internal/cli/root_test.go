package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "milele" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "milele")
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	expected := []string{
		"browse", "testimonials", "quote", "book", "login", "signup",
		"whoami", "logout", "config", "version",
	}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root should have %q subcommand", name)
		}
	}
}

func TestRootCmd_SubcommandShortDescriptions(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Short == "" {
			t.Errorf("subcommand %q should have a short description", cmd.Name())
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config-dir", "api-url", "no-color", "non-interactive"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root should have persistent flag --%s", name)
		}
	}
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	expected := []string{"show", "init", "path"}
	if got := len(configCmd.Commands()); got != len(expected) {
		t.Fatalf("config should have %d subcommands, got %d", len(expected), got)
	}
	for _, name := range expected {
		found := false
		for _, cmd := range configCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("config should have %q subcommand", name)
		}
	}
}

func TestFormCmds_HaveFieldFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []formFlag
	}{
		{"quote", quoteFlags},
		{"book", bookFlags},
		{"login", loginFlags},
		{"signup", signupFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.name})
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.name, err)
			}
			for _, f := range tt.flags {
				if cmd.Flags().Lookup(f.flag) == nil {
					t.Errorf("%s should have --%s", tt.name, f.flag)
				}
			}
		})
	}
}

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "milele ") {
		t.Errorf("output = %q, want prefix %q", buf.String(), "milele ")
	}
}
