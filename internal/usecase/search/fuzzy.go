package search

// subsequenceRatio returns len(q)/len(text) when every rune of q occurs in
// order (not necessarily contiguously) within text, and 0 otherwise. Inputs
// are assumed lowercased. The ratio rewards queries that cover more of the
// candidate field, so "cmds" scores higher against "commands" than against a
// long paragraph that happens to contain the same letters.
func subsequenceRatio(q, text string) float64 {
	if q == "" || text == "" {
		return 0
	}

	qr := []rune(q)
	tr := []rune(text)
	if len(qr) > len(tr) {
		return 0
	}

	i := 0
	for _, r := range tr {
		if r == qr[i] {
			i++
			if i == len(qr) {
				return float64(len(qr)) / float64(len(tr))
			}
		}
	}
	return 0
}
