package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/itsmudassir/expert-finder/internal/domain"
)

// Fee bucket identifiers, ordered by midpoint.
const (
	FeeUnder5K       = "under_5000"
	Fee5KTo10K       = "5000_10000"
	Fee10KTo20K      = "10000_20000"
	Fee20KTo30K      = "20000_30000"
	Fee30KTo50K      = "30000_50000"
	Fee50KTo75K      = "50000_75000"
	Fee75KTo100K     = "75000_100000"
	FeeOver100K      = "over_100000"
	FeePleaseInquire = "please_inquire"
)

var (
	feeRangePattern = regexp.MustCompile(`\$?([\d,]+)\s*[-–]\s*\$?([\d,]+)`)
	feeUnderPattern = regexp.MustCompile(`(?i)under\s*\$?([\d,]+)`)
	feeOverPattern  = regexp.MustCompile(`(?i)over\s*\$?([\d,]+)|\$?([\d,]+)\+`)
)

// ParseFee parses a speaking-fee string into the structured representation.
// Recognized shapes: "$10,000 - $20,000", "Under $5,000", "Over $50,000",
// "$20,000+", and inquire/contact phrasings. Unrecognized text keeps the
// display string only; callers count that as a parse miss, not an error.
// Returns false only for empty input.
func ParseFee(raw string) (domain.FeeInfo, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.FeeInfo{}, false
	}

	fee := domain.FeeInfo{Display: raw, Currency: "USD"}
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "pro bono") || strings.Contains(lower, "free") {
		fee.Negotiable = true
	}

	for _, phrase := range []string{"inquire", "contact", "request"} {
		if strings.Contains(lower, phrase) {
			fee.Bucket = FeePleaseInquire
			return fee, true
		}
	}

	if m := feeRangePattern.FindStringSubmatch(raw); m != nil {
		minAmount, errMin := parseAmount(m[1])
		maxAmount, errMax := parseAmount(m[2])
		if errMin == nil && errMax == nil {
			fee.Min = &minAmount
			fee.Max = &maxAmount
			fee.Bucket = feeBucket((minAmount + maxAmount) / 2)
			return fee, true
		}
	}

	if m := feeUnderPattern.FindStringSubmatch(raw); m != nil {
		if maxAmount, err := parseAmount(m[1]); err == nil {
			fee.Max = &maxAmount
			fee.Bucket = feeBucket(maxAmount / 2)
			return fee, true
		}
	}

	if m := feeOverPattern.FindStringSubmatch(raw); m != nil {
		amountStr := m[1]
		if amountStr == "" {
			amountStr = m[2]
		}
		if minAmount, err := parseAmount(amountStr); err == nil {
			fee.Min = &minAmount
			fee.Bucket = feeBucket(minAmount)
			return fee, true
		}
	}

	return fee, true
}

// ParseFeeObject maps an already-structured fee record onto FeeInfo.
func ParseFeeObject(obj domain.Record) (domain.FeeInfo, bool) {
	if len(obj) == 0 {
		return domain.FeeInfo{}, false
	}

	fee := domain.FeeInfo{Currency: "USD"}
	if min, ok := obj.Int("min"); ok {
		fee.Min = &min
	} else if min, ok := obj.Int("minimum"); ok {
		fee.Min = &min
	}
	if max, ok := obj.Int("max"); ok {
		fee.Max = &max
	} else if max, ok := obj.Int("maximum"); ok {
		fee.Max = &max
	}
	fee.Display = obj.FirstString("display", "text")

	if fee.Min != nil || fee.Max != nil {
		min, max := 0, 0
		if fee.Min != nil {
			min = *fee.Min
		}
		if fee.Max != nil {
			max = *fee.Max
		} else {
			max = min
		}
		fee.Bucket = feeBucket((min + max) / 2)
	}
	return fee, true
}

func parseAmount(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(s, ",", ""))
}

func feeBucket(mid int) string {
	switch {
	case mid < 5000:
		return FeeUnder5K
	case mid < 10000:
		return Fee5KTo10K
	case mid < 20000:
		return Fee10KTo20K
	case mid < 30000:
		return Fee20KTo30K
	case mid < 50000:
		return Fee30KTo50K
	case mid < 75000:
		return Fee50KTo75K
	case mid < 100000:
		return Fee75KTo100K
	default:
		return FeeOver100K
	}
}
