package normalizer

import (
	"reflect"
	"testing"
)

func TestLanguageNormalizer_ParentheticalProficiency(t *testing.T) {
	n := NewLanguageNormalizer()

	result := n.Normalize([]string{"English (Native)", "Spanish (Fluent)"})

	if result.Count != 2 {
		t.Fatalf("expected 2 languages, got %d", result.Count)
	}
	if !reflect.DeepEqual(result.Native, []string{"en"}) {
		t.Errorf("unexpected native bucket: %v", result.Native)
	}
	if !reflect.DeepEqual(result.Fluent, []string{"es"}) {
		t.Errorf("unexpected fluent bucket: %v", result.Fluent)
	}
	if result.Display != "English (Native), Spanish (Fluent)" {
		t.Errorf("unexpected display: %q", result.Display)
	}
}

func TestLanguageNormalizer_CommaSeparatedString(t *testing.T) {
	n := NewLanguageNormalizer()

	result := n.Normalize("French, German, Klingon")

	if result.Count != 3 {
		t.Fatalf("expected 3 entries, got %d", result.Count)
	}
	if !reflect.DeepEqual(result.Codes, []string{"de", "fr"}) {
		t.Errorf("unexpected codes: %v", result.Codes)
	}
	// Unrecognized language keeps its name, no code.
	last := result.Languages[2]
	if last.Code != "" || last.Name != "Klingon" {
		t.Errorf("unexpected entry for unknown language: %+v", last)
	}
}

func TestLanguageNormalizer_MapEntries(t *testing.T) {
	n := NewLanguageNormalizer()

	result := n.Normalize([]any{
		map[string]any{"language": "Portuguese", "proficiency": "C1"},
		map[string]any{"language": "Hindi", "proficiency": "Intermediate"},
	})

	if !reflect.DeepEqual(result.Fluent, []string{"pt"}) {
		t.Errorf("expected C1 to map to fluent, got %v", result.Fluent)
	}
	if !reflect.DeepEqual(result.Conversational, []string{"hi"}) {
		t.Errorf("expected intermediate to map to conversational, got %v", result.Conversational)
	}
}

func TestLanguageNormalizer_NonEnglishSpellingsAndVariants(t *testing.T) {
	n := NewLanguageNormalizer()

	entry, ok := n.NormalizeOne("español")
	if !ok || entry.Code != "es" || entry.Name != "Spanish" {
		t.Errorf("unexpected entry: %+v", entry)
	}

	entry, _ = n.NormalizeOne("Brazilian Portuguese")
	if entry.Code != "pt-BR" {
		t.Errorf("expected pt-BR, got %q", entry.Code)
	}
	if entry.Name != "Portuguese" {
		t.Errorf("regional variant should display base name, got %q", entry.Name)
	}
}

func TestLanguageNormalizer_ISOCodes(t *testing.T) {
	n := NewLanguageNormalizer()

	for input, want := range map[string]string{
		"fr": "fr",
		"en": "en",
		"es": "es",
		"de": "de",
	} {
		entry, ok := n.NormalizeOne(input)
		if !ok || entry.Code != want {
			t.Errorf("NormalizeOne(%q) code = %q, want %q", input, entry.Code, want)
		}
	}

	entry, _ := n.NormalizeOne("fr")
	if entry.Name != "French" {
		t.Errorf("unexpected name for bare code: %q", entry.Name)
	}
}

func TestLanguageNormalizer_MixedNamesAndCodes(t *testing.T) {
	n := NewLanguageNormalizer()

	result := n.Normalize([]string{"English (Native)", "Spanish (Fluent)", "fr"})

	if !reflect.DeepEqual(result.Codes, []string{"en", "es", "fr"}) {
		t.Fatalf("unexpected codes: %v", result.Codes)
	}
	if !reflect.DeepEqual(result.Native, []string{"en"}) {
		t.Errorf("unexpected native bucket: %v", result.Native)
	}
	if !reflect.DeepEqual(result.Fluent, []string{"es"}) {
		t.Errorf("unexpected fluent bucket: %v", result.Fluent)
	}
	if result.Display != "English (Native), Spanish (Fluent), French" {
		t.Errorf("unexpected display: %q", result.Display)
	}
}

func TestLanguageDisplay(t *testing.T) {
	got := LanguageDisplay(
		[]string{"en", "es", "zz"},
		[]string{"en"},
		[]string{"es"},
		nil,
		nil,
	)
	if got != "English (Native), Spanish (Fluent), zz" {
		t.Errorf("unexpected display: %q", got)
	}
}

func TestLanguageNormalizer_EmbeddedProficiency(t *testing.T) {
	n := NewLanguageNormalizer()

	entry, _ := n.NormalizeOne("english native speaker")
	if entry.Code != "en" {
		t.Errorf("unexpected code: %q", entry.Code)
	}
	if entry.Proficiency != "native" {
		t.Errorf("unexpected proficiency: %q", entry.Proficiency)
	}
}

func TestLanguageNormalizer_NilInput(t *testing.T) {
	n := NewLanguageNormalizer()

	result := n.Normalize(nil)
	if result.Count != 0 || len(result.Codes) != 0 || result.Display != "" {
		t.Errorf("expected zero-shaped result, got %+v", result)
	}
}
