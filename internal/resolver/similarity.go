package resolver

// Similarity scores two names on a 0-100 scale: the normalized Levenshtein
// ratio over their comparable forms.
func Similarity(a, b string) int {
	an, bn := NormalizeName(a), NormalizeName(b)
	if an == bn {
		return 100
	}
	if an == "" || bn == "" {
		return 0
	}

	dist := levenshtein(an, bn)
	denom := len([]rune(an))
	if l := len([]rune(bn)); l > denom {
		denom = l
	}
	score := 100 - dist*100/denom
	if score < 0 {
		score = 0
	}
	return score
}

// levenshtein is the classic two-row edit distance over runes.
func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ra := range ar {
		curr := make([]int, len(br)+1)
		curr[0] = i + 1
		for j, rb := range br {
			ins := curr[j] + 1
			del := prev[j+1] + 1
			sub := prev[j]
			if ra != rb {
				sub++
			}
			curr[j+1] = min3(ins, del, sub)
		}
		prev = curr
	}
	return prev[len(prev)-1]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
