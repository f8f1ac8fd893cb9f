package answer

import (
	"encoding/json"
	"testing"
)

func TestResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantList bool
		wantText string
		wantLen  int
	}{
		{"string", `"paris "`, false, "paris ", 0},
		{"list", `["was","were"]`, true, "", 2},
		{"list with null entry", `["was",null]`, true, "", 2},
		{"null", `null`, false, "", 0},
		{"number", `42`, false, "", 0},
		{"object", `{"a":1}`, false, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r Response
			if err := json.Unmarshal([]byte(tc.input), &r); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tc.input, err)
			}
			if r.IsList() != tc.wantList {
				t.Errorf("IsList() = %v, want %v", r.IsList(), tc.wantList)
			}
			if r.Text() != tc.wantText {
				t.Errorf("Text() = %q, want %q", r.Text(), tc.wantText)
			}
			if len(r.Parts()) != tc.wantLen {
				t.Errorf("len(Parts()) = %d, want %d", len(r.Parts()), tc.wantLen)
			}
		})
	}
}

func TestResponse_MapDecode(t *testing.T) {
	var answers map[string]Response
	data := `{"g1":"paris","c1":["was","was"],"w1":null}`
	if err := json.Unmarshal([]byte(data), &answers); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got := answers["c1"].Render(); got != "was | was" {
		t.Errorf("Render() = %q, want %q", got, "was | was")
	}
	if !answers["w1"].Blank() {
		t.Error("expected null answer to be blank")
	}
	if !answers["missing"].Blank() {
		t.Error("expected missing answer to be blank")
	}
}

func TestResponse_Blank(t *testing.T) {
	tests := []struct {
		name string
		r    Response
		want bool
	}{
		{"absent", Response{}, true},
		{"whitespace", Text("  "), true},
		{"text", Text("x"), false},
		{"empty list", List(), true},
		{"list with empty blank", List("was", " "), true},
		{"full list", List("was", "were"), false},
	}

	for _, tc := range tests {
		if got := tc.r.Blank(); got != tc.want {
			t.Errorf("%s: Blank() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResponse_Render(t *testing.T) {
	if got := (Response{}).Render(); got != NoAnswer {
		t.Errorf("absent Render() = %q, want %q", got, NoAnswer)
	}
	if got := Text("Paris").Render(); got != "Paris" {
		t.Errorf("text Render() = %q, want %q", got, "Paris")
	}
	if got := List("a", "b").Render(); got != "a | b" {
		t.Errorf("list Render() = %q, want %q", got, "a | b")
	}
}

func TestResponse_ListIsCopied(t *testing.T) {
	parts := []string{"a", "b"}
	r := List(parts...)
	parts[0] = "z"
	if r.Parts()[0] != "a" {
		t.Error("List must not alias the caller's slice")
	}
	got := r.Parts()
	got[1] = "z"
	if r.Parts()[1] != "b" {
		t.Error("Parts must return a copy")
	}
}

func TestResponse_MarshalRoundTrip(t *testing.T) {
	for _, r := range []Response{Text("paris"), List("was", "were"), {}} {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		var back Response
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", b, err)
		}
		if back.Render() != r.Render() || back.IsList() != r.IsList() {
			t.Errorf("round trip of %q gave %q", r.Render(), back.Render())
		}
	}
}
