// Package assets embeds the default word lists so the game runs with no
// external files configured.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Lines returns the non-blank, non-comment lines of an embedded list, lowercased.
func Lines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded secret-word candidates.
func AnswersList() ([]string, error) { return Lines("answers.txt") }

// AllowedList returns the embedded extra guesses.
func AllowedList() ([]string, error) { return Lines("allowed.txt") }
