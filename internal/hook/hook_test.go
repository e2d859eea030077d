package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeRepo(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git", "hooks"), 0755); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestInstall(t *testing.T) {
	root := fakeRepo(t)

	path, err := Install(root, false)
	if err != nil {
		t.Fatalf("Install() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("hook file missing: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "#!/bin/sh") {
		t.Errorf("hook is not a shell script: %q", content)
	}
	if !strings.Contains(content, "gitguard prepare") {
		t.Errorf("hook does not invoke the prepare command: %q", content)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0111 == 0 {
		t.Error("hook is not executable")
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	root := fakeRepo(t)

	if _, err := Install(root, false); err != nil {
		t.Fatal(err)
	}
	// A second install over our own hook needs no force.
	if _, err := Install(root, false); err != nil {
		t.Errorf("re-install over our own hook failed: %v", err)
	}
}

func TestInstallRefusesForeignHook(t *testing.T) {
	root := fakeRepo(t)
	hookPath := filepath.Join(root, ".git", "hooks", "prepare-commit-msg")
	if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho custom\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := Install(root, false); err == nil {
		t.Fatal("expected a refusal over a foreign hook")
	}

	// The foreign hook is untouched.
	data, _ := os.ReadFile(hookPath)
	if !strings.Contains(string(data), "echo custom") {
		t.Error("foreign hook was overwritten without force")
	}

	if _, err := Install(root, true); err != nil {
		t.Errorf("force install failed: %v", err)
	}
}

func TestInstallOutsideARepo(t *testing.T) {
	if _, err := Install(t.TempDir(), false); err == nil {
		t.Error("expected an error without a .git/hooks directory")
	}
}

func TestUninstall(t *testing.T) {
	root := fakeRepo(t)

	if _, err := Install(root, false); err != nil {
		t.Fatal(err)
	}

	removed, err := Uninstall(root)
	if err != nil {
		t.Fatalf("Uninstall() failed: %v", err)
	}
	if !removed {
		t.Error("expected the hook to be removed")
	}

	hookPath := filepath.Join(root, ".git", "hooks", "prepare-commit-msg")
	if _, err := os.Stat(hookPath); !os.IsNotExist(err) {
		t.Error("hook file still present")
	}
}

func TestUninstallLeavesForeignHooksAlone(t *testing.T) {
	root := fakeRepo(t)
	hookPath := filepath.Join(root, ".git", "hooks", "prepare-commit-msg")
	if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho custom\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := Uninstall(root); err == nil {
		t.Error("expected a refusal to remove a foreign hook")
	}
	if _, err := os.Stat(hookPath); err != nil {
		t.Error("foreign hook was removed")
	}
}

func TestUninstallWithoutAHook(t *testing.T) {
	root := fakeRepo(t)

	removed, err := Uninstall(root)
	if err != nil {
		t.Fatalf("Uninstall() failed: %v", err)
	}
	if removed {
		t.Error("nothing to remove, removed must be false")
	}
}
