package parser

import (
	"testing"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

func TestParseName_StripsHonorifics(t *testing.T) {
	name := ParseName("Dr. Jane van der Berg")

	if name.First != "Jane" {
		t.Errorf("unexpected first name: %q", name.First)
	}
	if name.Last != "van der Berg" {
		t.Errorf("unexpected last name: %q", name.Last)
	}
	if name.Display != "Dr. Jane van der Berg" {
		t.Errorf("display name must keep honorific, got %q", name.Display)
	}
}

func TestParseName_SingleToken(t *testing.T) {
	name := ParseName("Cher")
	if name.First != "Cher" || name.Last != "" {
		t.Errorf("unexpected result: %+v", name)
	}
}

func TestParseName_CollapsesWhitespaceAndQuotes(t *testing.T) {
	name := ParseName(`  John   "Johnny"  Smith `)
	if name.First != "John" || name.Last != "Johnny Smith" {
		t.Errorf("unexpected result: %+v", name)
	}
	if name.Display != `John Johnny Smith` {
		t.Errorf("unexpected display: %q", name.Display)
	}
}

func TestParseName_Empty(t *testing.T) {
	if name := ParseName(""); name != (Name{}) {
		t.Errorf("expected zero name, got %+v", name)
	}
}

func TestParseLocation_Heuristics(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Location
	}{
		{"Canada", domain.Location{Country: "Canada"}},
		{"Toronto, Canada", domain.Location{City: "Toronto", Country: "Canada"}},
		{"Austin, TX", domain.Location{City: "Austin", State: "TX", Country: "United States"}},
		{"Seattle, USA", domain.Location{City: "Seattle", Country: "United States"}},
		{"Portland, Oregon, USA", domain.Location{City: "Portland", State: "Oregon", Country: "USA"}},
		{"", domain.Location{}},
	}
	for _, tt := range tests {
		if got := ParseLocation(tt.in); got != tt.want {
			t.Errorf("ParseLocation(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseLocationObject(t *testing.T) {
	loc := ParseLocationObject(domain.Record{
		"city":           "Berlin",
		"state_province": "BE",
		"country":        "Germany",
	})
	if loc.City != "Berlin" || loc.State != "BE" || loc.Country != "Germany" {
		t.Errorf("unexpected result: %+v", loc)
	}
}

func TestParseFee_Range(t *testing.T) {
	fee, ok := ParseFee("$10,000 - $20,000")
	if !ok {
		t.Fatal("expected a parsed fee")
	}
	if fee.Min == nil || *fee.Min != 10000 || fee.Max == nil || *fee.Max != 20000 {
		t.Errorf("unexpected amounts: %+v", fee)
	}
	if fee.Bucket != Fee10KTo20K {
		t.Errorf("unexpected bucket: %q", fee.Bucket)
	}
}

func TestParseFee_UnderAndOver(t *testing.T) {
	fee, _ := ParseFee("Under $5,000")
	if fee.Max == nil || *fee.Max != 5000 || fee.Bucket != FeeUnder5K {
		t.Errorf("unexpected under result: %+v", fee)
	}

	fee, _ = ParseFee("$50,000+")
	if fee.Min == nil || *fee.Min != 50000 || fee.Bucket != Fee50KTo75K {
		t.Errorf("unexpected over result: %+v", fee)
	}
}

func TestParseFee_Inquire(t *testing.T) {
	fee, _ := ParseFee("Please Inquire")
	if fee.Bucket != FeePleaseInquire {
		t.Errorf("unexpected bucket: %q", fee.Bucket)
	}
	if fee.Display != "Please Inquire" {
		t.Errorf("unexpected display: %q", fee.Display)
	}
}

func TestParseFee_UnparseableKeepsDisplay(t *testing.T) {
	fee, ok := ParseFee("market rate")
	if !ok {
		t.Fatal("unparseable fee is still a result")
	}
	if fee.Min != nil || fee.Max != nil || fee.Bucket != "" {
		t.Errorf("expected display-only result, got %+v", fee)
	}
}

func TestParseFee_ProBono(t *testing.T) {
	fee, _ := ParseFee("Free / pro bono for schools")
	if !fee.Negotiable {
		t.Error("expected pro-bono detection")
	}
}

func TestParseFee_Empty(t *testing.T) {
	if _, ok := ParseFee("  "); ok {
		t.Error("empty input should report no fee")
	}
}
