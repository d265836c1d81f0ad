package template

import (
	"reflect"
	"testing"

	"cvforge/internal/style"
)

func TestCatalogIsWellFormed(t *testing.T) {
	catalog := List()
	if len(catalog) == 0 {
		t.Fatal("catalog is empty")
	}
	if catalog[0].ID != FreeTemplateID {
		t.Fatalf("first template = %q, want free template %q", catalog[0].ID, FreeTemplateID)
	}

	seen := map[string]bool{}
	for _, tmpl := range catalog {
		if tmpl.ID == "" || tmpl.Name == "" {
			t.Errorf("template %+v missing id or name", tmpl)
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

func TestGetKnownTemplate(t *testing.T) {
	for _, tmpl := range List() {
		if got := Get(tmpl.ID); got.ID != tmpl.ID {
			t.Errorf("Get(%q) returned %q", tmpl.ID, got.ID)
		}
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	got := Get("no-such-template")
	if got.ID != List()[0].ID {
		t.Fatalf("Get(unknown) = %q, want default %q", got.ID, List()[0].ID)
	}
	if Get("").ID != List()[0].ID {
		t.Fatal("Get(\"\") did not fall back to default")
	}
}

func TestExists(t *testing.T) {
	if !Exists(FreeTemplateID) {
		t.Errorf("Exists(%q) = false", FreeTemplateID)
	}
	if Exists("no-such-template") {
		t.Error("Exists(unknown) = true")
	}
}

func TestIsFreeTier(t *testing.T) {
	if !IsFreeTier(FreeTemplateID) {
		t.Fatalf("free template %q not recognized as free", FreeTemplateID)
	}
	for _, tmpl := range List() {
		if tmpl.ID == FreeTemplateID {
			continue
		}
		if IsFreeTier(tmpl.ID) {
			t.Errorf("paid template %q reported as free", tmpl.ID)
		}
	}
}

func TestResolveUnknownMatchesDefault(t *testing.T) {
	unknown := Resolve("no-such-template")
	fallback := Resolve(List()[0].ID)
	if !reflect.DeepEqual(unknown, fallback) {
		t.Fatal("unknown template resolved to a different sheet than the default")
	}
}

func TestResolveCoversAllRegions(t *testing.T) {
	for _, tmpl := range List() {
		sheet := Resolve(tmpl.ID)
		if len(sheet) != len(style.Regions) {
			t.Errorf("template %q resolved to %d regions, want %d", tmpl.ID, len(sheet), len(style.Regions))
		}
	}
}

func TestTemplateOverridesApply(t *testing.T) {
	// 每个带覆盖的模板至少要与基础样式表有一处差异。
	base := style.Resolve(nil)
	for _, tmpl := range List() {
		if len(tmpl.Styles) == 0 {
			continue
		}
		sheet := Resolve(tmpl.ID)
		if reflect.DeepEqual(sheet, base) {
			t.Errorf("template %q declares overrides but resolves identical to base", tmpl.ID)
		}
	}
}
