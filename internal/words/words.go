// apps/go-cli/internal/words/words.go
//
// Word list management for the terminal game.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply secret words: random, date-keyed daily, or a fixed word.
//
// Word Lists:
//   - "answers": candidate secrets (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Loading behavior (Load):
//   1. AnswersFile and AllowedFile both set → load each from its file.
//   2. Only AllowedFile set → that file is used for both lists.
//   3. Neither set → embedded assets (answers.txt, allowed.txt).
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase; "#" lines are comments.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
)

// Length is the fixed word length.
const Length = 5

var (
	// ErrEmpty means no answer words survived loading.
	ErrEmpty = errors.New("words: answers list is empty")
	// ErrInvalidWord is returned for a fixed secret that is not 5 letters a–z.
	ErrInvalidWord = errors.New("words: invalid word")
)

// Sources names optional word list files. Empty fields fall back to the embedded lists.
type Sources struct {
	AnswersFile string
	AllowedFile string
}

// List is an immutable dictionary plus the pool of candidate secrets.
type List struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a List from src. Returns ErrEmpty when no answers remain.
func Load(src Sources) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		raw, err := assets.AnswersList()
		if err != nil {
			return nil, err
		}
		ansList = normalize(raw)
		raw, err = assets.AllowedList()
		if err != nil {
			return nil, err
		}
		allowList = normalize(raw)
	}

	return New(ansList, allowList)
}

// New builds a List from in-memory word slices. Answers are always allowed.
func New(answers, allowed []string) (*List, error) {
	ans := normalize(answers)
	if len(ans) == 0 {
		return nil, ErrEmpty
	}
	l := &List{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return normalize(out), nil
}

// normalize lowercases and trims, keeping only valid 5-letter words once each.
func normalize(in []string) []string {
	var out []string
	seen := make(map[string]bool, len(in))
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != Length || !isAlpha(w) || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
func (l *List) Contains(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns a copy of the answer list.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

// RandomAnswer returns a cryptographically random answer.
func (l *List) RandomAnswer() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[n.Int64()]
}

// DailyAnswer returns the answer assigned to date's UTC day under salt.
func (l *List) DailyAnswer(date time.Time, salt string) string {
	return l.answers[daily.WordIndex(date, salt, len(l.answers))]
}

// WithSecret validates a fixed secret and returns a List that also accepts
// it as a guess, so the player can always win.
func (l *List) WithSecret(secret string) (*List, string, error) {
	w := strings.TrimSpace(strings.ToLower(secret))
	if len(w) != Length || !isAlpha(w) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidWord, secret)
	}
	if l.Contains(w) {
		return l, w, nil
	}
	cp := &List{answers: l.answers, answersSet: l.answersSet, allowedSet: make(map[string]struct{}, len(l.allowedSet)+1)}
	for k := range l.allowedSet {
		cp.allowedSet[k] = struct{}{}
	}
	cp.allowedSet[w] = struct{}{}
	return cp, w, nil
}
