package db

import (
	"fmt"
	"time"

	"remindme/internal/models"
	"remindme/internal/parser"
)

// CreateReminderRequest holds the data needed to store a new reminder.
type CreateReminderRequest struct {
	Title          string
	DueAt          *time.Time
	Recurring      bool
	RecurInterval  int
	RecurFrequency string
	RecurUntil     *time.Time
	Source         string // typed, voice
}

// FromParsed builds a create request out of a valid parse result. Callers
// must not pass an invalid ParsedReminder here.
func FromParsed(p parser.ParsedReminder, source string) CreateReminderRequest {
	return CreateReminderRequest{
		Title:          p.Title,
		DueAt:          p.DueDate,
		Recurring:      p.IsRecurring,
		RecurInterval:  p.RecurrenceInterval,
		RecurFrequency: string(p.RecurrenceFrequency),
		RecurUntil:     p.RecurrenceEndDate,
		Source:         source,
	}
}

// CreateReminder stores a new reminder.
func CreateReminder(req CreateReminderRequest) (*models.Reminder, error) {
	source := req.Source
	if source == "" {
		source = "typed"
	}
	reminder := models.Reminder{
		Title:          req.Title,
		DueAt:          req.DueAt,
		Status:         "pending",
		Recurring:      req.Recurring,
		RecurInterval:  req.RecurInterval,
		RecurFrequency: req.RecurFrequency,
		RecurUntil:     req.RecurUntil,
		Source:         source,
	}
	if err := DB.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// GetReminders retrieves reminders, pending first, soonest due first.
func GetReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := DB.Order("status asc, due_at asc").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// GetReminderByID fetches a single reminder.
func GetReminderByID(id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := DB.First(&reminder, id).Error; err != nil {
		return nil, fmt.Errorf("reminder #%d not found", id)
	}
	return &reminder, nil
}

// MarkReminderDone completes a reminder. Recurring reminders roll their due
// date forward by one interval instead of closing.
func MarkReminderDone(id uint) (*models.Reminder, error) {
	reminder, err := GetReminderByID(id)
	if err != nil {
		return nil, err
	}
	if reminder.Status == "done" {
		return nil, fmt.Errorf("reminder #%d is already done", id)
	}

	if reminder.Recurring && reminder.DueAt != nil {
		next := nextOccurrence(*reminder.DueAt, reminder.RecurInterval, reminder.RecurFrequency)
		if reminder.RecurUntil == nil || !next.After(*reminder.RecurUntil) {
			reminder.DueAt = &next
			if err := DB.Save(reminder).Error; err != nil {
				return nil, err
			}
			return reminder, nil
		}
	}

	now := time.Now()
	reminder.Status = "done"
	reminder.DoneAt = &now
	if err := DB.Save(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

// DeleteReminder soft-deletes a reminder.
func DeleteReminder(id uint) error {
	reminder, err := GetReminderByID(id)
	if err != nil {
		return err
	}
	return DB.Delete(reminder).Error
}

// nextOccurrence advances a due date by one recurrence step.
func nextOccurrence(due time.Time, interval int, frequency string) time.Time {
	if interval < 1 {
		interval = 1
	}
	switch frequency {
	case "weekly":
		return due.AddDate(0, 0, interval*7)
	case "monthly":
		return due.AddDate(0, interval, 0)
	default:
		return due.AddDate(0, 0, interval)
	}
}
