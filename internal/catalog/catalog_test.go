package catalog

import (
	"strings"
	"testing"
)

func TestSeed_URLsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, res := range Seed() {
		if seen[res.URL] {
			t.Errorf("Duplicate catalogue URL %q", res.URL)
		}
		seen[res.URL] = true
	}
}

func TestSeed_FieldsPopulated(t *testing.T) {
	resources := Seed()
	if len(resources) < 50 {
		t.Fatalf("Expected at least 50 seed resources, got %d", len(resources))
	}

	for _, res := range resources {
		if res.Title == "" || res.Description == "" || res.Category == "" {
			t.Errorf("Resource %q has empty fields", res.URL)
		}
		if !strings.HasPrefix(res.URL, "https://") && !strings.HasPrefix(res.URL, "http://") {
			t.Errorf("Resource %q has a malformed URL", res.Title)
		}
		if res.Keywords == "" {
			t.Errorf("Resource %q has no keywords", res.Title)
		}
		for _, kw := range strings.Split(res.Keywords, ",") {
			if strings.TrimSpace(kw) == "" {
				t.Errorf("Resource %q has a blank keyword entry", res.Title)
			}
		}
	}
}
