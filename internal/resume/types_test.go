package resume

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	raw := []byte(`{
		"contact": {"name": "Ada", "email": "ada@example.com"},
		"experience": [{"company": "Initech", "role": "Engineer"}],
		"education": [{"institution": "MIT", "degree": "BSc"}],
		"skills": "Go, SQL"
	}`)

	data, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Contact.Name != "Ada" {
		t.Errorf("name = %q", data.Contact.Name)
	}
	if len(data.Experience) != 1 || data.Experience[0].Company != "Initech" {
		t.Errorf("experience = %+v", data.Experience)
	}
	if len(data.Education) != 1 || data.Education[0].Degree != "BSc" {
		t.Errorf("education = %+v", data.Education)
	}
	if data.Skills != "Go, SQL" {
		t.Errorf("skills = %q", data.Skills)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	data, err := Decode(nil)
	if err != nil {
		t.Fatalf("nil input: %v", err)
	}
	if data.Contact.Name != "" || len(data.Experience) != 0 {
		t.Errorf("nil input produced data: %+v", data)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, raw := range []string{"not json", "[1,2,3", `"just a string"`} {
		if _, err := Decode([]byte(raw)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformed", raw, err)
		}
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	data, err := Decode([]byte(`{"skills": "Go", "future_field": true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Skills != "Go" {
		t.Errorf("skills = %q", data.Skills)
	}
}
