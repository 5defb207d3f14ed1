package dto

import (
	"priority-task-list/internal/domain"
	"priority-task-list/internal/service"
	"time"
)

type CreateTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Deadline string `json:"deadline"`
}

type SortRequest struct {
	Key string `json:"key"`
}

type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Deadline  time.Time `json:"deadline"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type SortResponse struct {
	Key       string `json:"key"`
	Order     string `json:"order"`
	Indicator string `json:"indicator"`
}

type SectionsResponse struct {
	Form      bool `json:"form"`
	Active    bool `json:"active"`
	Completed bool `json:"completed"`
}

type BoardResponse struct {
	Active    []TaskResponse   `json:"active"`
	Completed []TaskResponse   `json:"completed"`
	Sort      SortResponse     `json:"sort"`
	Sections  SectionsResponse `json:"sections"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromTask(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Priority:  string(t.Priority),
		Deadline:  t.Deadline,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

func FromTasks(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

func FromSort(s domain.SortState) SortResponse {
	return SortResponse{
		Key:       string(s.Key),
		Order:     string(s.Order),
		Indicator: s.Indicator(s.Key),
	}
}

func FromSections(s domain.Sections) SectionsResponse {
	return SectionsResponse{Form: s.Form, Active: s.Active, Completed: s.Completed}
}

func FromBoard(b service.Board) BoardResponse {
	return BoardResponse{
		Active:    FromTasks(b.Active),
		Completed: FromTasks(b.Completed),
		Sort:      FromSort(b.Sort),
		Sections:  FromSections(b.Sections),
	}
}
