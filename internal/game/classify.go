package game

import "fmt"

// Classify scores guess against word using the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Match.
//   - Count the remaining (non-match) word letters.
//
// Pass 2, left to right:
//   - For each non-match guess letter: if the letter still has a remaining
//     count, mark Misplaced and decrement; otherwise NoMatch.
//
// When the guess repeats a letter more often than the word holds it, the
// leftmost surplus occurrences win and the rest are NoMatch.
//
// Classify panics if the lengths differ; callers must reject such guesses first.
func Classify(word, guess string) Classification {
	n := len(word)
	if len(guess) != n {
		panic(fmt.Sprintf("game: classify %q against %q: length %d != %d", guess, word, len(guess), n))
	}

	res := make(Classification, n)
	remaining := make(map[byte]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == word[i] {
			res[i] = MarkMatch
		} else {
			res[i] = MarkNoMatch
			remaining[word[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkMatch {
			continue
		}
		c := guess[i]
		if remaining[c] > 0 {
			res[i] = MarkMisplaced
			remaining[c]--
		}
	}
	return res
}
