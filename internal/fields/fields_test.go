package fields

import (
	"sort"
	"testing"
)

func TestKeyUnambiguous(t *testing.T) {
	// "a:b"+"c" and "a"+"b:c" must not collide even though the joined text
	// would read the same without the length prefix.
	if Key("a:b", "c") == Key("a", "b:c") {
		t.Fatalf("Key collision: %q", Key("a:b", "c"))
	}
	if got, want := Key("user", "42"), "4:user:42"; got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
}

func TestIndexAddFieldsForget(t *testing.T) {
	ix := NewIndex()
	ix.Add("k", "a")
	ix.Add("k", "b")
	ix.Add("k", "a") // duplicate

	got := ix.Fields("k")
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Fields = %v", got)
	}

	ix.Forget("k", "a")
	if got := ix.Fields("k"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("Fields after Forget = %v", got)
	}

	ix.Forget("k", "b")
	if got := ix.Fields("k"); got != nil {
		t.Fatalf("Fields after emptying = %v, want nil", got)
	}
	ix.Forget("k", "b") // absent key is a no-op
}

func TestIndexIsolatesKeys(t *testing.T) {
	ix := NewIndex()
	ix.Add("k1", "a")
	ix.Add("k2", "b")
	if got := ix.Fields("k1"); len(got) != 1 || got[0] != "a" {
		t.Fatalf("Fields(k1) = %v", got)
	}
	ix.Forget("k1", "a")
	if got := ix.Fields("k2"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("Fields(k2) = %v", got)
	}
}
