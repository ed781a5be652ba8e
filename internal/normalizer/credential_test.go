package normalizer

import (
	"reflect"
	"testing"
)

func TestCredentialNormalizer_DegreeWithInstitution(t *testing.T) {
	n := NewCredentialNormalizer()

	deg, ok := n.NormalizeDegree("Ph.D. Computer Science from MIT")
	if !ok {
		t.Fatal("expected a parsed degree")
	}
	if deg.Degree != "PhD" {
		t.Errorf("unexpected degree type: %q", deg.Degree)
	}
	if deg.Institution != "Mit" {
		t.Errorf("unexpected institution: %q", deg.Institution)
	}
	if deg.Level != 5 {
		t.Errorf("expected doctoral level 5, got %d", deg.Level)
	}
}

func TestCredentialNormalizer_MBANotClaimedByBA(t *testing.T) {
	n := NewCredentialNormalizer()

	deg, _ := n.NormalizeDegree("MBA from Wharton")
	if deg.Degree != "MBA" {
		t.Errorf("expected MBA, got %q", deg.Degree)
	}
	if deg.Level != 4 {
		t.Errorf("expected level 4, got %d", deg.Level)
	}
}

func TestCredentialNormalizer_UnrecognizedDegreeKeepsOriginal(t *testing.T) {
	n := NewCredentialNormalizer()

	deg, ok := n.NormalizeDegree("Certificate of Attendance")
	if !ok {
		t.Fatal("expected a result")
	}
	if deg.Degree != "Certificate of Attendance" || deg.Level != 0 {
		t.Errorf("unexpected fallback: %+v", deg)
	}
}

func TestCredentialNormalizer_CertificationWithYearAndIssuer(t *testing.T) {
	n := NewCredentialNormalizer()

	cert, _ := n.NormalizeCertification("PMP 2020 by PMI")
	if cert.Certification != "PMP" {
		t.Errorf("unexpected certification: %q", cert.Certification)
	}
	if cert.Year == nil || *cert.Year != 2020 {
		t.Errorf("unexpected year: %v", cert.Year)
	}
	if cert.Issuer != "Pmi" {
		t.Errorf("unexpected issuer: %q", cert.Issuer)
	}
}

func TestCredentialNormalizer_AwardBuckets(t *testing.T) {
	n := NewCredentialNormalizer()

	result := n.NormalizeAwards([]string{
		"Nobel Prize in Physics 2021",
		"Emmy Award winner",
		"CSP designation",
		"",
	})

	if len(result.Awards) != 3 {
		t.Fatalf("expected 3 awards, got %d", len(result.Awards))
	}
	if result.PrestigiousCount != 1 {
		t.Errorf("expected 1 prestigious award, got %d", result.PrestigiousCount)
	}
	if !reflect.DeepEqual(result.SpeakerAwards, []string{"CSP"}) {
		t.Errorf("unexpected speaker awards: %v", result.SpeakerAwards)
	}
	if !reflect.DeepEqual(result.MediaAwards, []string{"Emmy Award"}) {
		t.Errorf("unexpected media awards: %v", result.MediaAwards)
	}
	if result.Awards[0].Year == nil || *result.Awards[0].Year != 2021 {
		t.Errorf("unexpected year on first award: %v", result.Awards[0].Year)
	}
}

func TestCredentialNormalizer_BioScanner(t *testing.T) {
	n := NewCredentialNormalizer()

	bio := "Jane holds a PhD in Economics from Stanford. She is a CISSP and a TEDx speaker."
	result := n.ExtractFromBio(bio)

	foundPhD := false
	for _, d := range result.Degrees {
		if d.Degree == "PhD" {
			foundPhD = true
		}
	}
	if !foundPhD {
		t.Errorf("expected PhD in scanned degrees, got %+v", result.Degrees)
	}

	foundCISSP := false
	for _, c := range result.Certifications {
		if c.Certification == "CISSP" {
			foundCISSP = true
		}
	}
	if !foundCISSP {
		t.Errorf("expected CISSP in scanned certifications, got %+v", result.Certifications)
	}

	foundTEDx := false
	for _, a := range result.Awards {
		if a.Category == "TEDx" {
			foundTEDx = true
		}
	}
	if !foundTEDx {
		t.Errorf("expected TEDx in scanned awards, got %+v", result.Awards)
	}
}

func TestCredentialNormalizer_EmptyBio(t *testing.T) {
	n := NewCredentialNormalizer()

	result := n.ExtractFromBio("")
	if len(result.Degrees) != 0 || len(result.Certifications) != 0 || len(result.Awards) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
