// Package view derives the displayed task lists from the collection and the
// current sort setting. Everything here is pure: inputs are never modified.
package view

import (
	"cmp"
	"priority-task-list/internal/domain"
	"slices"
)

type View struct {
	Active    []domain.Task
	Completed []domain.Task
}

// Derive splits tasks into active and completed lists, both ordered by the
// same sort state.
func Derive(tasks []domain.Task, sort domain.SortState) View {
	active := make([]domain.Task, 0, len(tasks))
	completed := make([]domain.Task, 0)

	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}

	sortInPlace(active, sort)
	sortInPlace(completed, sort)

	return View{Active: active, Completed: completed}
}

// Sort returns a sorted copy of tasks.
func Sort(tasks []domain.Task, sort domain.SortState) []domain.Task {
	out := slices.Clone(tasks)
	sortInPlace(out, sort)
	return out
}

func sortInPlace(tasks []domain.Task, sort domain.SortState) {
	compare := Comparator(sort)
	slices.SortFunc(tasks, compare)
}

// Comparator returns the ordering for sort. Ties compare equal.
func Comparator(sort domain.SortState) func(a, b domain.Task) int {
	var byKey func(a, b domain.Task) int
	switch sort.Key {
	case domain.SortByPriority:
		byKey = func(a, b domain.Task) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		}
	default:
		byKey = func(a, b domain.Task) int {
			return a.Deadline.Compare(b.Deadline)
		}
	}

	if sort.Order == domain.Descending {
		return func(a, b domain.Task) int {
			return byKey(b, a)
		}
	}
	return byKey
}
