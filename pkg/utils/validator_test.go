package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist-api/domain/dto"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	valid := dto.CreateTaskRequest{
		ListID: uuid.New(),
		Title:  "Buy milk",
	}
	assert.NoError(t, ValidateStruct(&valid))

	withPriority := valid
	withPriority.Priority = "P2"
	assert.NoError(t, ValidateStruct(&withPriority))
}

func TestValidateCreateTaskRequestMissingFields(t *testing.T) {
	req := dto.CreateTaskRequest{}

	err := ValidateStruct(&req)
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range GetValidationErrors(err) {
		fields[fe.Field] = fe.Message
	}

	// validator รายงานด้วยชื่อ json field
	assert.Contains(t, fields, "listId")
	assert.Contains(t, fields, "title")
	assert.Equal(t, "is required", fields["title"])
}

func TestValidateCreateTaskRequestBadPriority(t *testing.T) {
	req := dto.CreateTaskRequest{
		ListID:   uuid.New(),
		Title:    "Buy milk",
		Priority: "P5",
	}

	err := ValidateStruct(&req)
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "priority", errs[0].Field)
	assert.Equal(t, "must be one of: P1 P2 P3 P4", errs[0].Message)
}

func TestValidateCreateTaskRequestTitleTooLong(t *testing.T) {
	req := dto.CreateTaskRequest{
		ListID: uuid.New(),
		Title:  strings.Repeat("x", 201),
	}

	err := ValidateStruct(&req)
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
}

// Omitted pointer fields must not trigger validation on a PATCH body.
func TestValidateUpdateTaskRequestEmptyBody(t *testing.T) {
	req := dto.UpdateTaskRequest{}
	assert.NoError(t, ValidateStruct(&req))
}

func TestValidateUpdateTaskRequestBadPriority(t *testing.T) {
	bad := "urgent"
	req := dto.UpdateTaskRequest{Priority: &bad}

	err := ValidateStruct(&req)
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "priority", errs[0].Field)
}

func TestValidateListTasksQuery(t *testing.T) {
	ok := dto.ListTasksQuery{SortBy: "priority", Order: "asc"}
	assert.NoError(t, ValidateStruct(&ok))

	empty := dto.ListTasksQuery{}
	assert.NoError(t, ValidateStruct(&empty))

	bad := dto.ListTasksQuery{SortBy: "color"}
	assert.Error(t, ValidateStruct(&bad))
}
