package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CategoryRef is a numeric category reference that tolerates the web client
// sending the category id either as a JSON number or as a quoted string.
type CategoryRef uint

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("category id must not be empty")
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", s, err)
	}
	*c = CategoryRef(id)
	return nil
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint(c))
}

// CreateQuestionRequest carries a new question. All four fields are required;
// numeric fields are pointers so that an explicit zero survives the presence
// check.
type CreateQuestionRequest struct {
	Question   string       `json:"question" validate:"required"`
	Answer     string       `json:"answer" validate:"required"`
	Difficulty *int         `json:"difficulty" validate:"required"`
	Category   *CategoryRef `json:"category" validate:"required"`
}

// QuizCategoryRef is the category selector of a quiz round. ID zero means
// "all categories".
type QuizCategoryRef struct {
	ID CategoryRef `json:"id"`
}

// QuizRequest asks for the next quiz question. Both fields must be present;
// an empty previous_questions list is valid and means a fresh game.
type QuizRequest struct {
	QuizCategory      *QuizCategoryRef `json:"quiz_category" validate:"required"`
	PreviousQuestions *[]uint          `json:"previous_questions" validate:"required"`
}
