package main

import (
	"testing"
)

func TestBuildSaveRepo_DefaultsToMemory(t *testing.T) {
	repo, backend, err := buildSaveRepo(config{})
	if err != nil {
		t.Fatalf("buildSaveRepo: %v", err)
	}
	if backend != "memory" || repo == nil {
		t.Fatalf("backend=%q repo=%v, want memory", backend, repo)
	}
}

func TestBuildSaveRepo_FileBackend(t *testing.T) {
	repo, backend, err := buildSaveRepo(config{SaveDir: t.TempDir()})
	if err != nil {
		t.Fatalf("buildSaveRepo: %v", err)
	}
	if backend != "file" || repo == nil {
		t.Fatalf("backend=%q, want file", backend)
	}
}

func TestLoadCatalogs_DefaultsWithoutDataDir(t *testing.T) {
	cats, err := loadCatalogs(config{})
	if err != nil {
		t.Fatalf("loadCatalogs: %v", err)
	}
	if len(cats.Missions()) == 0 || len(cats.Events()) == 0 {
		t.Fatalf("default catalogs are empty")
	}
}

func TestLoadCatalogs_EmptyDataDirFallsBackToDefaults(t *testing.T) {
	cats, err := loadCatalogs(config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("loadCatalogs: %v", err)
	}
	if len(cats.Missions()) == 0 {
		t.Fatalf("loader with empty dir dropped default missions")
	}
}
