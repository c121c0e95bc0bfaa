package utils

import (
	"regexp"
	"strings"

	"quizgen/internal/models/response_models"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// OptionLetter maps an option position to its letter, 0 -> A.
func OptionLetter(index int) string {
	return string(rune('A' + index))
}

// SafeFileName turns a source label into a filename-safe stem: every
// character outside [a-zA-Z0-9] becomes '_' and the result is cut at 50.
func SafeFileName(source string) string {
	safe := unsafeFileChars.ReplaceAllString(source, "_")
	if len(safe) > 50 {
		safe = safe[:50]
	}
	return safe
}

// QuizToText renders questions as a plain-text answer sheet. Multiple choice
// questions come first, then true/false, keeping the original relative order
// inside each group; one blank line separates entries. The function is total:
// nil or empty input yields an empty string, and an answer matching no option
// renders an empty answer letter rather than failing.
func QuizToText(questions []response_models.Question) string {
	if len(questions) == 0 {
		return ""
	}

	var b strings.Builder

	var mcqs, trueFalse []response_models.Question
	for _, q := range questions {
		switch q.Kind {
		case response_models.KindMultipleChoice:
			mcqs = append(mcqs, q)
		case response_models.KindTrueFalse:
			trueFalse = append(trueFalse, q)
		}
	}

	for _, q := range mcqs {
		b.WriteString(q.Text + "\n")
		correctLetter := ""
		for i, option := range q.Options {
			letter := OptionLetter(i)
			b.WriteString(letter + ". " + option + "\n")
			if option == q.Answer {
				correctLetter = letter
			}
		}
		b.WriteString("ANSWER: " + correctLetter + "\n\n")
	}

	for _, q := range trueFalse {
		b.WriteString(q.Text + "\n")
		b.WriteString("A. True\nB. False\n")
		answer := "B"
		if q.Answer == "True" {
			answer = "A"
		}
		b.WriteString("ANSWER: " + answer + "\n\n")
	}

	return strings.TrimSpace(b.String())
}
