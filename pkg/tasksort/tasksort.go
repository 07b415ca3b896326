// Package tasksort partitions tasks by completion and orders each group by a
// selectable comparator. Partitioning always happens before sorting.
package tasksort

import (
	"sort"
	"strings"

	"tasklist-api/domain/models"
)

type Key string

const (
	KeyImportance Key = "importance"
	KeyPriority   Key = "priority"
	KeyDueDate    Key = "dueDate"
	KeyTitle      Key = "title"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Apply partitions tasks into pending and completed groups, then sorts both with
// the given key and direction. Unknown values fall back to importance/desc
// (important tasks first), matching the app's default view.
func Apply(tasks []*models.Task, sortBy, order string) (pending, completed []*models.Task) {
	key, ord := normalize(sortBy, order)
	pending, completed = Partition(tasks)
	Sort(pending, key, ord)
	Sort(completed, key, ord)
	return pending, completed
}

func normalize(sortBy, order string) (Key, Order) {
	key := Key(sortBy)
	switch key {
	case KeyPriority, KeyDueDate, KeyTitle, KeyImportance:
	default:
		key = KeyImportance
	}

	ord := Order(order)
	if ord != OrderAsc && ord != OrderDesc {
		ord = OrderDesc
	}
	return key, ord
}

// Partition splits tasks into not-completed and completed groups, keeping the
// input order within each group.
func Partition(tasks []*models.Task) (pending, completed []*models.Task) {
	for _, task := range tasks {
		if task.IsCompleted {
			completed = append(completed, task)
		} else {
			pending = append(pending, task)
		}
	}
	return pending, completed
}

// Sort orders tasks in place. The sort is stable so equal tasks keep their
// relative order. Tasks without a due date always sort last under KeyDueDate,
// regardless of direction.
func Sort(tasks []*models.Task, key Key, order Order) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if key == KeyDueDate {
			switch {
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
		}

		c := compare(a, b, key)
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
}

// compare returns the ascending ordering of a and b under key.
func compare(a, b *models.Task, key Key) int {
	switch key {
	case KeyPriority:
		// ascending runs P1 → P4
		return a.Priority.Rank() - b.Priority.Rank()
	case KeyDueDate:
		switch {
		case a.DueDate.Before(*b.DueDate):
			return -1
		case a.DueDate.After(*b.DueDate):
			return 1
		}
		return 0
	case KeyTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	default: // KeyImportance
		return boolRank(a.IsImportant) - boolRank(b.IsImportant)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
