package tasksort

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-api/domain/models"
)

func newTask(title string, completed, important bool, priority models.Priority, due *time.Time) *models.Task {
	return &models.Task{
		ID:          uuid.New(),
		Title:       title,
		IsCompleted: completed,
		IsImportant: important,
		Priority:    priority,
		DueDate:     due,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestPartition(t *testing.T) {
	tasks := []*models.Task{
		newTask("a", false, false, models.PriorityP4, nil),
		newTask("b", true, false, models.PriorityP4, nil),
		newTask("c", false, false, models.PriorityP4, nil),
		newTask("d", true, false, models.PriorityP4, nil),
	}

	pending, completed := Partition(tasks)

	assert.Equal(t, []string{"a", "c"}, titles(pending))
	assert.Equal(t, []string{"b", "d"}, titles(completed))
}

func TestPartitionEmpty(t *testing.T) {
	pending, completed := Partition(nil)
	assert.Empty(t, pending)
	assert.Empty(t, completed)
}

// Sorting never mixes the groups: a completed task with the highest priority
// still lands in the completed group.
func TestApplyPartitionsBeforeSorting(t *testing.T) {
	tasks := []*models.Task{
		newTask("done-urgent", true, true, models.PriorityP1, nil),
		newTask("open-low", false, false, models.PriorityP4, nil),
	}

	pending, completed := Apply(tasks, "priority", "asc")

	require.Len(t, pending, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, "open-low", pending[0].Title)
	assert.Equal(t, "done-urgent", completed[0].Title)
}

func TestSortPriority(t *testing.T) {
	tasks := []*models.Task{
		newTask("low", false, false, models.PriorityP4, nil),
		newTask("urgent", false, false, models.PriorityP1, nil),
		newTask("mid", false, false, models.PriorityP3, nil),
		newTask("high", false, false, models.PriorityP2, nil),
	}

	Sort(tasks, KeyPriority, OrderAsc)
	assert.Equal(t, []string{"urgent", "high", "mid", "low"}, titles(tasks))

	Sort(tasks, KeyPriority, OrderDesc)
	assert.Equal(t, []string{"low", "mid", "high", "urgent"}, titles(tasks))
}

func TestSortTitleCaseInsensitive(t *testing.T) {
	tasks := []*models.Task{
		newTask("banana", false, false, models.PriorityP4, nil),
		newTask("Apple", false, false, models.PriorityP4, nil),
		newTask("cherry", false, false, models.PriorityP4, nil),
	}

	Sort(tasks, KeyTitle, OrderAsc)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(tasks))

	Sort(tasks, KeyTitle, OrderDesc)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(tasks))
}

func TestSortImportance(t *testing.T) {
	tasks := []*models.Task{
		newTask("plain-1", false, false, models.PriorityP4, nil),
		newTask("starred", false, true, models.PriorityP4, nil),
		newTask("plain-2", false, false, models.PriorityP4, nil),
	}

	// desc puts important tasks first; the stable sort keeps plain-1 before plain-2
	Sort(tasks, KeyImportance, OrderDesc)
	assert.Equal(t, []string{"starred", "plain-1", "plain-2"}, titles(tasks))
}

func TestSortDueDateNilAlwaysLast(t *testing.T) {
	early := timePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	late := timePtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tasks := []*models.Task{
		newTask("no-date", false, false, models.PriorityP4, nil),
		newTask("late", false, false, models.PriorityP4, late),
		newTask("early", false, false, models.PriorityP4, early),
	}

	Sort(tasks, KeyDueDate, OrderAsc)
	assert.Equal(t, []string{"early", "late", "no-date"}, titles(tasks))

	// nil due dates stay last even when the direction flips
	Sort(tasks, KeyDueDate, OrderDesc)
	assert.Equal(t, []string{"late", "early", "no-date"}, titles(tasks))
}

func TestApplyDefaultsToImportanceDesc(t *testing.T) {
	tasks := []*models.Task{
		newTask("plain", false, false, models.PriorityP4, nil),
		newTask("starred", false, true, models.PriorityP4, nil),
	}

	pending, _ := Apply(tasks, "", "")
	assert.Equal(t, []string{"starred", "plain"}, titles(pending))

	// unknown keys fall back the same way
	pending, _ = Apply(tasks, "bogus", "sideways")
	assert.Equal(t, []string{"starred", "plain"}, titles(pending))
}

func TestSortStable(t *testing.T) {
	tasks := []*models.Task{
		newTask("first", false, false, models.PriorityP2, nil),
		newTask("second", false, false, models.PriorityP2, nil),
		newTask("third", false, false, models.PriorityP2, nil),
	}

	Sort(tasks, KeyPriority, OrderAsc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(tasks))
}
