package constants

// JobStatus is the status reported by the external extraction runner for one job.
type JobStatus string

// Stable values (these exact strings travel over the status endpoint).
const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed" // terminal success
	JobStatusFailed     JobStatus = "failed"    // terminal failure
)

// Terminal reports whether the job can no longer change.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// StepState is the status of one named pipeline stage within a job.
type StepState string

const (
	StepPending   StepState = "pending"
	StepRunning   StepState = "running"
	StepCompleted StepState = "completed"
	StepFailed    StepState = "failed"
)

// ImageStatus is the moderation state of a candidate listing photo.
type ImageStatus string

const (
	ImagePending  ImageStatus = "pending"
	ImageApproved ImageStatus = "approved"
	ImageRejected ImageStatus = "rejected"
)

// ImageStatuses holds the allowed image statuses for schema validation.
var ImageStatuses = []string{string(ImagePending), string(ImageApproved), string(ImageRejected)}

// SubmissionStatus is the triage state of a public business nomination.
// Submissions only ever move by explicit admin action.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionInReview SubmissionStatus = "in_review"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// SubmissionStatuses holds the allowed submission statuses for schema validation.
var SubmissionStatuses = []string{
	string(SubmissionPending),
	string(SubmissionInReview),
	string(SubmissionApproved),
	string(SubmissionRejected),
}

// ValidSubmissionTransition reports whether an admin may move a submission
// from one status to another. Terminal states may be reopened to in_review,
// but a submission never transitions on its own.
func ValidSubmissionTransition(from, to SubmissionStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case SubmissionPending:
		return to == SubmissionInReview || to == SubmissionApproved || to == SubmissionRejected
	case SubmissionInReview:
		return to == SubmissionApproved || to == SubmissionRejected
	case SubmissionApproved, SubmissionRejected:
		return to == SubmissionInReview
	}
	return false
}
