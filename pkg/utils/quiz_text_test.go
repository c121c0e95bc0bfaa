package utils

import (
	"strings"
	"testing"

	"quizgen/internal/models/response_models"
)

func TestQuizToText(t *testing.T) {
	t.Run("MultipleChoiceLettering", func(t *testing.T) {
		questions := []response_models.Question{
			{
				Kind:    response_models.KindMultipleChoice,
				Text:    "What is the capital of Italy?",
				Options: []string{"Paris", "Rome", "Berlin"},
				Answer:  "Rome",
			},
		}

		got := QuizToText(questions)
		want := "What is the capital of Italy?\nA. Paris\nB. Rome\nC. Berlin\nANSWER: B"
		if got != want {
			t.Errorf("QuizToText() = %q, want %q", got, want)
		}
	})

	t.Run("TrueFalse", func(t *testing.T) {
		questions := []response_models.Question{
			{Kind: response_models.KindTrueFalse, Text: "Is the sky blue?", Answer: "True"},
		}

		got := QuizToText(questions)
		want := "Is the sky blue?\nA. True\nB. False\nANSWER: A"
		if got != want {
			t.Errorf("QuizToText() = %q, want %q", got, want)
		}
	})

	t.Run("TrueFalseUnknownAnswerFallsBackToFalse", func(t *testing.T) {
		questions := []response_models.Question{
			{Kind: response_models.KindTrueFalse, Text: "Water is wet.", Answer: "Maybe"},
		}

		if got := QuizToText(questions); !strings.HasSuffix(got, "ANSWER: B") {
			t.Errorf("expected fallback to B, got %q", got)
		}
	})

	t.Run("MultipleChoiceBeforeTrueFalse", func(t *testing.T) {
		questions := []response_models.Question{
			{Kind: response_models.KindTrueFalse, Text: "Go is compiled.", Answer: "True"},
			{
				Kind:    response_models.KindMultipleChoice,
				Text:    "Pick one.",
				Options: []string{"a", "b"},
				Answer:  "a",
			},
		}

		got := QuizToText(questions)
		mcIdx := strings.Index(got, "Pick one.")
		tfIdx := strings.Index(got, "Go is compiled.")
		if mcIdx == -1 || tfIdx == -1 || mcIdx > tfIdx {
			t.Errorf("multiple choice block should come first, got %q", got)
		}
	})

	t.Run("AnswerMatchingNoOptionRendersEmptyLetter", func(t *testing.T) {
		questions := []response_models.Question{
			{
				Kind:    response_models.KindMultipleChoice,
				Text:    "Broken question",
				Options: []string{"x", "y"},
				Answer:  "z",
			},
		}

		if got := QuizToText(questions); !strings.Contains(got, "ANSWER:") || strings.Contains(got, "ANSWER: z") {
			t.Errorf("expected empty answer letter, got %q", got)
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		if got := QuizToText(nil); got != "" {
			t.Errorf("QuizToText(nil) = %q, want empty", got)
		}
		if got := QuizToText([]response_models.Question{}); got != "" {
			t.Errorf("QuizToText(empty) = %q, want empty", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		questions := []response_models.Question{
			{
				Kind:    response_models.KindMultipleChoice,
				Text:    "Q",
				Options: []string{"one", "two"},
				Answer:  "two",
			},
			{Kind: response_models.KindTrueFalse, Text: "TF", Answer: "False"},
		}

		first := QuizToText(questions)
		second := QuizToText(questions)
		if first != second {
			t.Errorf("QuizToText is not deterministic:\n%q\n%q", first, second)
		}
	})
}

func TestSafeFileName(t *testing.T) {
	t.Run("ReplacesUnsafeCharacters", func(t *testing.T) {
		got := SafeFileName("http://example.com/v1?t=2")
		want := "http___example_com_v1_t_2"
		if got != want {
			t.Errorf("SafeFileName() = %q, want %q", got, want)
		}
	})

	t.Run("TruncatesAtFifty", func(t *testing.T) {
		long := strings.Repeat("a", 80)
		if got := SafeFileName(long); len(got) != 50 {
			t.Errorf("len = %d, want 50", len(got))
		}
	})
}

func TestOptionLetter(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 2: "C", 25: "Z"}
	for index, want := range cases {
		if got := OptionLetter(index); got != want {
			t.Errorf("OptionLetter(%d) = %q, want %q", index, got, want)
		}
	}
}
