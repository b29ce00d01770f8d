package hostport

import (
	"testing"
)

func TestParseValid(t *testing.T) {
	host, port, err := Parse("localhost:6379")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if host != "localhost" || port != 6379 {
		t.Fatalf("got %q:%d, want localhost:6379", host, port)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"localhost",        // no port
		"localhost:",       // empty port
		"localhost:abc",    // non-numeric port
		"localhost:0",      // out of range
		"localhost:70000",  // out of range
		":6379",            // empty host
		"host:6379:extra",  // too many colons
	}
	for _, in := range cases {
		if _, _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestParseListOrderAndSkips(t *testing.T) {
	got, err := ParseList(" localhost:6380, localhost:6381 ,,localhost:6382,")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := []string{"localhost:6380", "localhost:6381", "localhost:6382"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseListEmpty(t *testing.T) {
	for _, in := range []string{"", ",", " , ,"} {
		got, err := ParseList(in)
		if err != nil {
			t.Fatalf("ParseList(%q): %v", in, err)
		}
		if len(got) != 0 {
			t.Fatalf("ParseList(%q) = %v, want empty", in, got)
		}
	}
}

func TestParseListPropagatesError(t *testing.T) {
	if _, err := ParseList("localhost:6380,badhost"); err == nil {
		t.Fatal("ParseList should fail on malformed item")
	}
}
