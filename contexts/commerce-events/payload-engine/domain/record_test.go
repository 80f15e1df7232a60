package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	record := NewRecord()
	record.Set("zebra", 1)
	record.Set("apple", 2)
	record.Set("mango", 3)

	if !reflect.DeepEqual(record.Keys(), []string{"zebra", "apple", "mango"}) {
		t.Fatalf("unexpected key order: %v", record.Keys())
	}

	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	want := `{"zebra":1,"apple":2,"mango":3}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	record := NewRecord()
	record.Set("first", 1)
	record.Set("second", 2)
	record.Set("first", 10)

	if record.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", record.Len())
	}
	if !reflect.DeepEqual(record.Keys(), []string{"first", "second"}) {
		t.Fatalf("unexpected key order after overwrite: %v", record.Keys())
	}
	value, ok := record.Get("first")
	if !ok || value != 10 {
		t.Fatalf("expected overwritten value 10, got %v", value)
	}
}

func TestRecordMarshalsNestedRecords(t *testing.T) {
	inner := NewRecord()
	inner.Set("id", "abc")
	record := NewRecord()
	record.Set("child", inner)
	record.Set("empty", nil)

	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	want := `{"child":{"id":"abc"},"empty":null}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}
