package service

import "testing"

func TestParseQuestionAndAnswer(t *testing.T) {
	question, answer, err := parseQuestionAndAnswer("Question: What is the largest lake in Africa?\nAnswer: Lake Victoria\n")
	if err != nil {
		t.Fatalf("parseQuestionAndAnswer failed: %v", err)
	}
	if question != "What is the largest lake in Africa?" {
		t.Errorf("Unexpected question: %q", question)
	}
	if answer != "Lake Victoria" {
		t.Errorf("Unexpected answer: %q", answer)
	}
}

func TestParseQuestionAndAnswerTrailingText(t *testing.T) {
	raw := "Question: Who discovered penicillin?\nAnswer: Alexander Fleming\nLet me know if you need more!"
	_, answer, err := parseQuestionAndAnswer(raw)
	if err != nil {
		t.Fatalf("parseQuestionAndAnswer failed: %v", err)
	}
	if answer != "Alexander Fleming" {
		t.Errorf("Expected the answer cut at the line break, got %q", answer)
	}
}

func TestParseQuestionAndAnswerMalformed(t *testing.T) {
	cases := []string{
		"",
		"Here is a fun fact about penguins.",
		"Answer: Out of order\nQuestion: Why?",
		"Question: \nAnswer: ",
	}
	for i, raw := range cases {
		if _, _, err := parseQuestionAndAnswer(raw); err == nil {
			t.Errorf("Expected case %d to fail, raw %q", i, raw)
		}
	}
}
