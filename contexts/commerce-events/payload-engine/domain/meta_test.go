package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestBuildMetaCoreShape(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	meta := BuildMeta(issued, "3.12", Principal("VXNlcjox", "user"), nil, false)

	if !reflect.DeepEqual(meta.Keys(), []string{"issued_at", "version", "issuing_principal"}) {
		t.Fatalf("unexpected meta keys: %v", meta.Keys())
	}
	value, _ := meta.Get("issued_at")
	if value != "2024-06-01T12:00:00Z" {
		t.Fatalf("unexpected issued_at: %v", value)
	}
	principal, _ := meta.Get("issuing_principal")
	record, ok := principal.(*Record)
	if !ok {
		t.Fatalf("expected principal record, got %T", principal)
	}
	id, _ := record.Get("id")
	if id != "VXNlcjox" {
		t.Fatalf("unexpected principal id: %v", id)
	}
}

func TestBuildMetaExtensionsCannotOverrideCoreKeys(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	meta := BuildMeta(issued, "3.12", Principal(nil, nil), map[string]any{
		"version":  "spoofed",
		"b_custom": 2,
		"a_custom": 1,
	}, false)

	value, _ := meta.Get("version")
	if value != "3.12" {
		t.Fatalf("core version overridden: %v", value)
	}
	want := []string{"issued_at", "version", "issuing_principal", "a_custom", "b_custom"}
	if !reflect.DeepEqual(meta.Keys(), want) {
		t.Fatalf("expected sorted extensions after core keys, got %v", meta.Keys())
	}
}

func TestBuildMetaCamelCase(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	meta := BuildMeta(issued, "3.12", Principal(nil, nil), map[string]any{"shop_domain": "x"}, true)

	want := []string{"issuedAt", "version", "issuingPrincipal", "shopDomain"}
	if !reflect.DeepEqual(meta.Keys(), want) {
		t.Fatalf("expected camelCase keys, got %v", meta.Keys())
	}
}
