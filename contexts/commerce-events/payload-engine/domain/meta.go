package domain

import (
	"sort"
	"strings"
	"time"
)

// Meta envelope core keys. Caller extensions may add keys alongside these
// but never replace them.
const (
	metaKeyIssuedAt  = "issued_at"
	metaKeyVersion   = "version"
	metaKeyPrincipal = "issuing_principal"
)

// Principal builds the issuing-principal block of a meta envelope. Both
// values are nil when no requestor is attributed to the event.
func Principal(id, principalType any) *Record {
	principal := NewRecord()
	principal.Set("id", id)
	principal.Set("type", principalType)
	return principal
}

// BuildMeta assembles the common envelope attached to most payloads.
// Extensions merge after the core keys in sorted key order. The camelCase
// transform, when requested, applies uniformly to every key post-merge.
func BuildMeta(issuedAt time.Time, version string, principal *Record, extensions map[string]any, camelCase bool) *Record {
	meta := NewRecord()
	meta.Set(metaKeyIssuedAt, issuedAt.Format(time.RFC3339Nano))
	meta.Set(metaKeyVersion, version)
	meta.Set(metaKeyPrincipal, principal)

	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		if key == metaKeyIssuedAt || key == metaKeyVersion || key == metaKeyPrincipal {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		meta.Set(key, extensions[key])
	}

	if camelCase {
		camel := NewRecord()
		for _, key := range meta.Keys() {
			value, _ := meta.Get(key)
			camel.Set(camelKey(key), value)
		}
		return camel
	}
	return meta
}

func camelKey(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
