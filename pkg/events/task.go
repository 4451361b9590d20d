package events

import "time"

// Task event types, published by task-service.
const (
	TypeTaskCreated   = "task.created"
	TypeTaskUpdated   = "task.updated"
	TypeTaskDeleted   = "task.deleted"
	TypeTaskAssigned  = "task.assigned"
	TypeTaskCompleted = "task.completed"
	TypeTaskDueSoon   = "task.due.soon"
)

type TaskCreated struct {
	Metadata
	TaskID      int64     `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assigned_to"`
	CustomerID  int64     `json:"customer_id"`
	LeadID      int64     `json:"lead_id"`
	DueDate     time.Time `json:"due_date"`
}

func (*TaskCreated) Domain() Domain { return DomainTask }

func NewTaskCreated(taskID int64, title, description, taskType, priority, assignedTo string, customerID, leadID int64, dueDate time.Time) *TaskCreated {
	return &TaskCreated{
		Metadata:    newMetadata(TypeTaskCreated, SourceTaskService),
		TaskID:      taskID,
		Title:       title,
		Description: description,
		Type:        taskType,
		Priority:    priority,
		AssignedTo:  assignedTo,
		CustomerID:  customerID,
		LeadID:      leadID,
		DueDate:     dueDate,
	}
}

type TaskUpdated struct {
	Metadata
	TaskID      int64     `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assigned_to"`
	CustomerID  int64     `json:"customer_id"`
	LeadID      int64     `json:"lead_id"`
	DueDate     time.Time `json:"due_date"`
}

func (*TaskUpdated) Domain() Domain { return DomainTask }

func NewTaskUpdated(taskID int64, title, description, taskType, priority, assignedTo string, customerID, leadID int64, dueDate time.Time) *TaskUpdated {
	return &TaskUpdated{
		Metadata:    newMetadata(TypeTaskUpdated, SourceTaskService),
		TaskID:      taskID,
		Title:       title,
		Description: description,
		Type:        taskType,
		Priority:    priority,
		AssignedTo:  assignedTo,
		CustomerID:  customerID,
		LeadID:      leadID,
		DueDate:     dueDate,
	}
}

type TaskDeleted struct {
	Metadata
	TaskID     int64  `json:"task_id"`
	Title      string `json:"title"`
	AssignedTo string `json:"assigned_to"`
}

func (*TaskDeleted) Domain() Domain { return DomainTask }

func NewTaskDeleted(taskID int64, title, assignedTo string) *TaskDeleted {
	return &TaskDeleted{
		Metadata:   newMetadata(TypeTaskDeleted, SourceTaskService),
		TaskID:     taskID,
		Title:      title,
		AssignedTo: assignedTo,
	}
}

type TaskAssigned struct {
	Metadata
	TaskID        int64     `json:"task_id"`
	OldAssignedTo string    `json:"old_assigned_to"`
	NewAssignedTo string    `json:"new_assigned_to"`
	Title         string    `json:"title"`
	DueDate       time.Time `json:"due_date"`
}

func (*TaskAssigned) Domain() Domain { return DomainTask }

func NewTaskAssigned(taskID int64, oldAssignedTo, newAssignedTo, title string, dueDate time.Time) *TaskAssigned {
	return &TaskAssigned{
		Metadata:      newMetadata(TypeTaskAssigned, SourceTaskService),
		TaskID:        taskID,
		OldAssignedTo: oldAssignedTo,
		NewAssignedTo: newAssignedTo,
		Title:         title,
		DueDate:       dueDate,
	}
}

type TaskCompleted struct {
	Metadata
	TaskID      int64     `json:"task_id"`
	AssignedTo  string    `json:"assigned_to"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}

func (*TaskCompleted) Domain() Domain { return DomainTask }

func NewTaskCompleted(taskID int64, assignedTo, title string, completedAt time.Time) *TaskCompleted {
	return &TaskCompleted{
		Metadata:    newMetadata(TypeTaskCompleted, SourceTaskService),
		TaskID:      taskID,
		AssignedTo:  assignedTo,
		Title:       title,
		CompletedAt: completedAt,
	}
}

type TaskDueSoon struct {
	Metadata
	TaskID     int64     `json:"task_id"`
	AssignedTo string    `json:"assigned_to"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
}

func (*TaskDueSoon) Domain() Domain { return DomainTask }

func NewTaskDueSoon(taskID int64, assignedTo, title string, dueDate time.Time) *TaskDueSoon {
	return &TaskDueSoon{
		Metadata:   newMetadata(TypeTaskDueSoon, SourceTaskService),
		TaskID:     taskID,
		AssignedTo: assignedTo,
		Title:      title,
		DueDate:    dueDate,
	}
}
