package configfile

// isSpace reports whether c is whitespace in the C locale sense.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Tokenize splits line into at most maxTokens whitespace-delimited words.
// The returned tokens share storage with line. Words past maxTokens are ignored.
func Tokenize(line string, maxTokens int) []string {
	if maxTokens <= 0 {
		return nil
	}

	tokens := make([]string, 0, maxTokens)
	i := 0
	for len(tokens) < maxTokens {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}

		start := i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return tokens
}
