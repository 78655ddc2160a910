package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/bogadeji/trivia/internal/models"
)

// EventType represents question lifecycle events published to the broker
type EventType string

const (
	EventQuestionCreated EventType = "question.created"
	EventQuestionDeleted EventType = "question.deleted"
)

const eventSource = "trivia-api"

// QuestionEvent is the envelope for all question lifecycle events
type QuestionEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Data      interface{} `json:"data"`
}

type QuestionCreatedEvent struct {
	QuestionID uint `json:"question_id"`
	CategoryID uint `json:"category_id"`
	Difficulty int  `json:"difficulty"`
}

type QuestionDeletedEvent struct {
	QuestionID uint `json:"question_id"`
	CategoryID uint `json:"category_id"`
}

func NewQuestionCreatedEvent(question *models.Question) *QuestionEvent {
	return newQuestionEvent(EventQuestionCreated, QuestionCreatedEvent{
		QuestionID: question.ID,
		CategoryID: question.CategoryID,
		Difficulty: question.Difficulty,
	})
}

func NewQuestionDeletedEvent(question *models.Question) *QuestionEvent {
	return newQuestionEvent(EventQuestionDeleted, QuestionDeletedEvent{
		QuestionID: question.ID,
		CategoryID: question.CategoryID,
	})
}

func newQuestionEvent(eventType EventType, data interface{}) *QuestionEvent {
	return &QuestionEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Data:      data,
	}
}
