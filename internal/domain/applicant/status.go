package applicant

type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "applied"
	ApplicationScreening    ApplicationStatus = "screening"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationOffered      ApplicationStatus = "offered"
	ApplicationHired        ApplicationStatus = "hired"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationWithdrawn    ApplicationStatus = "withdrawn"
)

func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationApplied,
		ApplicationScreening,
		ApplicationInterviewing,
		ApplicationOffered,
		ApplicationHired,
		ApplicationRejected,
		ApplicationWithdrawn,
	}
}

func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
	InterviewNoShow    InterviewStatus = "no_show"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewNoShow:
		return true
	default:
		return false
	}
}

type InterviewType string

const (
	InterviewPhone     InterviewType = "phone"
	InterviewVideo     InterviewType = "video"
	InterviewOnsite    InterviewType = "onsite"
	InterviewTechnical InterviewType = "technical"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewPhone, InterviewVideo, InterviewOnsite, InterviewTechnical:
		return true
	default:
		return false
	}
}
