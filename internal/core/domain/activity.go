package domain

import "time"

// ActionType is the closed enum of auditable actions. New values may be
// appended; existing values are part of the stored log and must not change.
type ActionType string

const (
	ActionCreateSale             ActionType = "CREATE_SALE"
	ActionCreateExpense          ActionType = "CREATE_EXPENSE"
	ActionRequestDeletion        ActionType = "REQUEST_DELETION"
	ActionApproveDeletion        ActionType = "APPROVE_DELETION"
	ActionRejectDeletion         ActionType = "REJECT_DELETION"
	ActionUpdateTransaction      ActionType = "UPDATE_TRANSACTION"
	ActionAdminDeleteTransaction ActionType = "ADMIN_DELETE_TRANSACTION"
	ActionAddUnavailability      ActionType = "ADD_UNAVAILABILITY"
	ActionDeleteUnavailability   ActionType = "DELETE_UNAVAILABILITY"
	ActionApproveAvailability    ActionType = "APPROVE_AVAILABILITY"
	ActionRejectAvailability     ActionType = "REJECT_AVAILABILITY"
	ActionClockIn                ActionType = "CLOCK_IN"
	ActionClockOut               ActionType = "CLOCK_OUT"
	ActionCreateUser             ActionType = "CREATE_USER"
	ActionDisableUser            ActionType = "DISABLE_USER"
	ActionUpdateEmployee         ActionType = "UPDATE_EMPLOYEE"
	ActionCreateShiftTemplate    ActionType = "CREATE_SHIFT_TEMPLATE"
	ActionUpdateShiftTemplate    ActionType = "UPDATE_SHIFT_TEMPLATE"
	ActionDeleteShiftTemplate    ActionType = "DELETE_SHIFT_TEMPLATE"
	ActionCreateSchedule         ActionType = "CREATE_SCHEDULE"
	ActionDeleteSchedule         ActionType = "DELETE_SCHEDULE"
	ActionPublishRota            ActionType = "PUBLISH_ROTA"
)

// ActivityLogEntry is one append-only audit record. The actor email is
// denormalized so the log stays readable after a user row changes.
type ActivityLogEntry struct {
	ID         int64      `json:"id"`
	UserUID    string     `json:"user_uid"`
	UserEmail  string     `json:"user_email"`
	ActionType ActionType `json:"action_type"`
	Details    string     `json:"details"`
	Timestamp  time.Time  `json:"timestamp"`
}
