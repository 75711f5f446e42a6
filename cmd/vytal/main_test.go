package main

import (
	"testing"

	"github.com/vytalhealth/vytal/internal/config"
)

func TestCSRFMiddlewareConfigUsesCookieSecureFlag(t *testing.T) {
	secureConfig := csrfMiddlewareConfig(true)
	if !secureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be enabled")
	}
	if !secureConfig.CookieHTTPOnly {
		t.Fatal("expected csrf cookie to be httpOnly")
	}
	if secureConfig.CookieName != "vytal_csrf" {
		t.Fatalf("expected csrf cookie name vytal_csrf, got %q", secureConfig.CookieName)
	}
	if secureConfig.KeyLookup != "form:csrf_token" {
		t.Fatalf("expected csrf key lookup form:csrf_token, got %q", secureConfig.KeyLookup)
	}

	if csrfMiddlewareConfig(false).CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be disabled")
	}
}

func TestNewFiberAppUsesUploadLimit(t *testing.T) {
	app := newFiberApp(config.Config{MaxUploadMB: 3})
	if got := app.Config().BodyLimit; got != 3*1024*1024 {
		t.Fatalf("expected body limit of 3MB, got %d", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "export-report", "reset-cache"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (err %v)", name, cmd, err)
		}
	}

	exportCmd, _, _ := root.Find([]string{"export-report"})
	flag := exportCmd.Flags().Lookup("out")
	if flag == nil || flag.DefValue != "Health_Report.pdf" {
		t.Fatalf("expected --out flag defaulting to Health_Report.pdf, got %#v", flag)
	}
}
