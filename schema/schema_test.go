package schema

import (
	"errors"
	"strings"
	"testing"
)

type userRecord struct {
	ID    int    `json:"id"    msgpack:"id"    cbor:"id"    validate:"required,gt=0"`
	Email string `json:"email" msgpack:"email" cbor:"email" validate:"required,email"`
}

func TestJSONAcceptsValidStruct(t *testing.T) {
	v, err := JSON[userRecord]{}.Validate([]byte(`{"id":7,"email":"a@b.example"}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if v.ID != 7 || v.Email != "a@b.example" {
		t.Errorf("got %+v", v)
	}
}

func TestJSONRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed document", `{"id":7,`},
		{"wrong field type", `{"id":"seven","email":"a@b.example"}`},
		{"rule violation zero id", `{"id":0,"email":"a@b.example"}`},
		{"rule violation bad email", `{"id":7,"email":"not-an-email"}`},
		{"empty object", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (JSON[userRecord]{}).Validate([]byte(tc.raw)); err == nil {
				t.Fatalf("accepted %s", tc.raw)
			}
		})
	}
}

func TestJSONNonStructSkipsRules(t *testing.T) {
	m, err := JSON[map[string]int]{}.Validate([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Validate map: %v", err)
	}
	if m["a"] != 1 {
		t.Errorf("got %v", m)
	}
}

func TestMsgpackEnforcesRules(t *testing.T) {
	sch := Msgpack[userRecord]{}

	good, err := sch.Encode(userRecord{ID: 1, Email: "a@b.example"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := sch.Validate(good); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	bad, err := sch.Encode(userRecord{ID: -3, Email: "a@b.example"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := sch.Validate(bad); err == nil {
		t.Error("rule-breaking record accepted")
	}
}

func TestCBOREnforcesRules(t *testing.T) {
	sch := MustCBOR[userRecord](true)

	good, err := sch.Encode(userRecord{ID: 2, Email: "c@d.example"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v, err := sch.Validate(good)
	if err != nil || v.ID != 2 {
		t.Fatalf("Validate = (%+v, %v)", v, err)
	}

	if _, err := sch.Validate([]byte{0xff, 0x00}); err == nil {
		t.Error("garbage bytes accepted")
	}
	bad, _ := sch.Encode(userRecord{ID: 2, Email: "nope"})
	if _, err := sch.Validate(bad); err == nil {
		t.Error("rule-breaking record accepted")
	}
}

func TestBytesAndStringAreIdentity(t *testing.T) {
	b, err := Bytes{}.Validate([]byte{0x00, 0xff})
	if err != nil || len(b) != 2 {
		t.Errorf("Bytes.Validate = (%v, %v)", b, err)
	}
	s, err := String{}.Validate([]byte("héllo"))
	if err != nil || s != "héllo" {
		t.Errorf("String.Validate = (%q, %v)", s, err)
	}
}

func TestLimitShieldsInner(t *testing.T) {
	calls := 0
	inner := Func[string](func(raw []byte) (string, error) {
		calls++
		return string(raw), nil
	})
	sch := Limit[string]{Inner: inner, MaxBytes: 4}

	if _, err := sch.Validate([]byte("okay")); err != nil {
		t.Fatalf("payload at limit rejected: %v", err)
	}
	_, err := sch.Validate([]byte("too long"))
	if err == nil {
		t.Fatal("oversized payload accepted")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("inner invoked %d times, want 1", calls)
	}
}

func TestFuncAdapter(t *testing.T) {
	sentinel := errors.New("nope")
	f := Func[int](func([]byte) (int, error) { return 0, sentinel })
	if _, err := f.Validate(nil); !errors.Is(err, sentinel) {
		t.Errorf("err = %v", err)
	}
}
