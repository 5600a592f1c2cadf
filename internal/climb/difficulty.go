package climb

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is the editorial difficulty rating of a climb.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

var difficultyRanks = map[Difficulty]int{
	DifficultyEasy:    1,
	DifficultyMedium:  2,
	DifficultyHard:    3,
	DifficultyExtreme: 4,
}

// ParseDifficulty normalizes s and returns the matching Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := difficultyRanks[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Rank orders difficulties from 1 (easy) to 4 (extreme). Unknown values rank 0.
func (d Difficulty) Rank() int {
	return difficultyRanks[d]
}

func (d Difficulty) IsValid() bool {
	return d.Rank() > 0
}

func (d Difficulty) String() string {
	return string(d)
}
