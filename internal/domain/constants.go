package domain

// Slot generation
const (
	// SlotStepMinutes шаг, с которым клиенту предлагаются времена начала
	SlotStepMinutes = 15
)

// DefaultSettingsID id of the single business_settings row
const DefaultSettingsID int64 = 1

// Default business settings values
const (
	DefaultTimezone                       = "Asia/Jerusalem"
	DefaultBufferMinutes                  = 0
	DefaultCancellationHoursBefore        = 12
	DefaultRebookingHoursBefore           = 12
	DefaultCancellationGracePeriodMinutes = 30
	DefaultRebookingGracePeriodMinutes    = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = SlotStepMinutes
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxBufferMinutes          = 240
	MaxPolicyHours            = 24 * 14
	MaxGracePeriodMinutes     = 24 * 60
	MaxNotesLength            = 500
	MaxTimeBlockReasonLength  = 200
	MaxServiceNameLength      = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
