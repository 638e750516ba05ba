package appointments

// Wizard steps, advanced one at a time through next/back
const (
	StepSelectingService  = 1
	StepSelectingDateTime = 2
	StepEnteringContact   = 3

	firstStep = StepSelectingService
	lastStep  = StepEnteringContact
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusSubmitting Status = "SUBMITTING"
	StatusConfirmed  Status = "CONFIRMED"
)

// IsValid checks if the session status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusSubmitting, StatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanSubmit checks if a session with this status may start a submission
func (s Status) CanSubmit() bool {
	return s == StatusInProgress
}

// CanReset checks if the wizard may be reset back to the first step
func (s Status) CanReset() bool {
	return s == StatusConfirmed
}

// StepName returns the label the progress indicator shows for a step
func StepName(step int) string {
	switch step {
	case StepSelectingService:
		return "Select Service"
	case StepSelectingDateTime:
		return "Choose Date & Time"
	case StepEnteringContact:
		return "Your Details"
	}
	return ""
}
