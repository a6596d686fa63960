package applicant

import "testing"

func TestEnumerationMembership(t *testing.T) {
	for _, status := range ApplicationStatuses() {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ApplicationStatus("archived").Valid() {
		t.Fatal("expected unknown application status to be invalid")
	}
	if !InterviewNoShow.Valid() || InterviewStatus("pending").Valid() {
		t.Fatal("unexpected interview status membership")
	}
	if !InterviewTechnical.Valid() || InterviewType("panel").Valid() {
		t.Fatal("unexpected interview type membership")
	}
}
