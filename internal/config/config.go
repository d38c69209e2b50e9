// Package config loads the answer book used to verify puzzle answers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var ErrNoAnswer = errors.New("no recorded answer")

// AnswerBook maps puzzle names such as "16_2" to known answers.
type AnswerBook struct {
	Answers map[string]string `toml:"answers"`
}

func LoadAnswerBook(path string) (AnswerBook, error) {
	var book AnswerBook
	if err := loadToml(path, &book); err != nil {
		return AnswerBook{}, err
	}
	if book.Answers == nil {
		book.Answers = make(map[string]string)
	}
	if err := ValidateAnswerBook(book); err != nil {
		return AnswerBook{}, err
	}
	return book, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateAnswerBook(book AnswerBook) error {
	for name, answer := range book.Answers {
		if _, _, err := puzzle.ParseName(name); err != nil {
			return fmt.Errorf("answer %q invalid: %w", name, err)
		}
		if strings.TrimSpace(answer) == "" {
			return fmt.Errorf("answer %q is empty", name)
		}
	}
	return nil
}

// Check compares got against the recorded answer for name. Surrounding
// whitespace is ignored on both sides.
func (b AnswerBook) Check(name string, got any) (bool, error) {
	want, ok := b.Answers[name]
	if !ok {
		return false, fmt.Errorf("%w for %s", ErrNoAnswer, name)
	}
	return strings.TrimSpace(fmt.Sprint(got)) == strings.TrimSpace(want), nil
}
