package engine

import (
	"reflect"
	"testing"
)

func TestIdentifySection(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Experience", "experience"},
		{"WORK EXPERIENCE", "experience"},
		{"Professional Summary", "summary"},
		{"Technical Skills", "skills"},
		{"EDUCATION", "education"},
		{"jane@example.com", "contact"},
		{"Phone: 555-123-4567", "contact"},
		{"Certifications", "certifications"},
		// Degree and GPA lines are content, not education headers.
		{"Bachelor of Science, GPA 3.8", ""},
		{"University of Somewhere", ""},
		// Too long for a header.
		{"Led the education initiative across multiple regional offices and training centers", ""},
		{"x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := identifySection(tt.line); got != tt.want {
				t.Fatalf("identifySection(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDetectSectionsInference(t *testing.T) {
	text := `John Doe
john@example.com

Worked at a university as a research assistant using Python and SQL`
	doc, err := NewDocument(text)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	a := detectSections(doc)

	if !a.Has("contact") {
		t.Fatal("contact should be inferred from the email line")
	}
	if !a.Has("education") {
		t.Fatal("education should be inferred from university vocabulary")
	}
	if !a.Has("skills") {
		t.Fatal("skills should be inferred from technology names")
	}
}

func TestDetectSectionsDuplicatesAndOrder(t *testing.T) {
	text := `jane@example.com

Skills
Python

Experience
Senior Engineer

Skills
SQL

Education
Bachelor of Arts`
	doc, err := NewDocument(text)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	a := detectSections(doc)

	if want := []string{"skills"}; !reflect.DeepEqual(a.DuplicatedSections, want) {
		t.Fatalf("duplicated = %v, want %v", a.DuplicatedSections, want)
	}
	// Skills before experience is one inversion; the duplicate skills header
	// must not add another.
	if len(a.OrderIssues) != 1 {
		t.Fatalf("order issues = %v, want exactly one", a.OrderIssues)
	}
	if len(a.MissingGate) != 0 {
		t.Fatalf("missing gate = %v, want none", a.MissingGate)
	}
}

func TestDetectSectionsMissingRequired(t *testing.T) {
	doc, err := NewDocument("Awards\nEmployee of the month")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	a := detectSections(doc)

	want := []string{"contact", "experience", "education", "skills"}
	if !reflect.DeepEqual(a.MissingRequired, want) {
		t.Fatalf("missing required = %v, want %v", a.MissingRequired, want)
	}
	wantGate := []string{"contact", "experience", "skills"}
	if !reflect.DeepEqual(a.MissingGate, wantGate) {
		t.Fatalf("missing gate = %v, want %v", a.MissingGate, wantGate)
	}
}
