package admin

import "testing"

func TestDefaultRegistryIsValid(t *testing.T) {
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}
	entries := reg.Entries()
	if len(entries) == 0 {
		t.Fatalf("registry is empty")
	}
	if _, ok := reg.Lookup("visas"); !ok {
		t.Fatalf("visas entry missing")
	}
	dashboard, ok := reg.Lookup("dashboard")
	if !ok || !dashboard.ActionLess {
		t.Fatalf("dashboard should be an action-less entry")
	}
}

func TestNewRegistryRejectsDuplicateKeys(t *testing.T) {
	_, err := NewRegistry([]Entry{
		{Key: "a", Title: "A", ListRoute: "/a", AddRoute: "/a/add"},
		{Key: "a", Title: "A again", ListRoute: "/a", AddRoute: "/a/add"},
	})
	if err == nil {
		t.Fatalf("duplicate key accepted")
	}
}

func TestNewRegistryRejectsEmptyKey(t *testing.T) {
	_, err := NewRegistry([]Entry{{Title: "Nameless", ListRoute: "/x", AddRoute: "/x/add"}})
	if err == nil {
		t.Fatalf("empty key accepted")
	}
}

func TestNewRegistryRejectsMissingRoutes(t *testing.T) {
	_, err := NewRegistry([]Entry{{Key: "x", Title: "X"}})
	if err == nil {
		t.Fatalf("entry without routes accepted")
	}
}

func TestNewRegistryRejectsBadEditPattern(t *testing.T) {
	_, err := NewRegistry([]Entry{{Key: "x", Title: "X", ListRoute: "/x", AddRoute: "/x/add", EditRoute: "/x/edit"}})
	if err == nil {
		t.Fatalf("edit route without id placeholder accepted")
	}
}

func TestRegistryPreservesOrder(t *testing.T) {
	reg, err := NewRegistry([]Entry{
		{Key: "b", Title: "B", ListRoute: "/b", AddRoute: "/b/add"},
		{Key: "a", Title: "A", ListRoute: "/a", AddRoute: "/a/add"},
	})
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}
	entries := reg.Entries()
	if entries[0].Key != "b" || entries[1].Key != "a" {
		t.Fatalf("declaration order lost: %+v", entries)
	}
}
