package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOverrideFromEnv(t *testing.T) {
	target := "from-yaml"

	t.Setenv("SOME_TEST_KEY", "")
	overrideFromEnv(&target, "SOME_TEST_KEY")
	if target != "from-yaml" {
		t.Fatalf("empty env must not override, got %q", target)
	}

	t.Setenv("SOME_TEST_KEY", "from-env")
	overrideFromEnv(&target, "SOME_TEST_KEY")
	if target != "from-env" {
		t.Fatalf("expected env value, got %q", target)
	}
}

func TestLoadConfigEnvOverridesDelimiter(t *testing.T) {
	dir := t.TempDir()
	yaml := "RECIPE_STEP_DELIMITER: \". \"\nDB_HOST: localhost\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config.yaml: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	defer os.Chdir(wd)

	t.Setenv("RECIPE_STEP_DELIMITER", " | ")
	t.Setenv("DB_HOST", "")
	LoadConfig()

	if got := GetConfig("RECIPE_STEP_DELIMITER"); got != " | " {
		t.Fatalf("expected env to override yaml delimiter, got %q", got)
	}
	if got := GetConfig("DB_HOST"); got != "localhost" {
		t.Fatalf("expected yaml DB_HOST to survive, got %q", got)
	}
}
