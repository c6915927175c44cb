package optional

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

type payload struct {
	Name Value[string] `json:"name"`
	Step Value[int32]  `json:"step"`
}

func TestValue_MarshalJSON(t *testing.T) {
	body, err := sonic.Marshal(payload{Step: Some[int32](3)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"name":null,"step":3}`
	if string(body) != want {
		t.Fatalf("unexpected json:\nwant: %s\ngot:  %s", want, body)
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var got payload
	if err := sonic.Unmarshal([]byte(`{"name":"a","step":null}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if name, ok := got.Name.Get(); !ok || name != "a" {
		t.Fatalf("unexpected name: %q present=%t", name, ok)
	}
	if got.Step.IsSome() {
		t.Fatalf("expected step to be absent")
	}
}

func TestValue_Helpers(t *testing.T) {
	if None[int]().OrElse(7) != 7 {
		t.Fatalf("expected fallback for absent value")
	}
	if Some(2).OrElse(7) != 2 {
		t.Fatalf("expected stored value")
	}
	if None[string]().Ptr() != nil {
		t.Fatalf("expected nil pointer for absent value")
	}

	s := "x"
	v := FromPtr(&s)
	s = "changed"
	if got, _ := v.Get(); got != "x" {
		t.Fatalf("FromPtr must copy, got %q", got)
	}
	if FromPtr[string](nil).IsSome() {
		t.Fatalf("FromPtr(nil) must be absent")
	}
}
