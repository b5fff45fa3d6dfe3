package interview

import (
	"fmt"
	"strings"
)

// EmptyResponseFeedback is returned for empty or whitespace-only answers.
const EmptyResponseFeedback = "Empty response detected. Zero points awarded for this section."

// Feedback builds rule-based commentary for a scored answer. Remarks are
// emitted in a fixed order: accuracy, clarity, time.
func Feedback(score ScoreBreakdown, q Question, answer string) string {
	if IsDegenerate(answer) {
		return EmptyResponseFeedback
	}

	var remarks []string
	if score.Accuracy < 50 {
		missing := MissingKeywords(q.ExpectedKeywords, answer)
		if len(missing) > 2 {
			missing = missing[:2]
		}
		if len(missing) > 0 {
			remarks = append(remarks, fmt.Sprintf("Low technical accuracy. Missing key concepts like %s.", strings.Join(missing, ", ")))
		} else {
			remarks = append(remarks, "Low technical accuracy.")
		}
	} else {
		remarks = append(remarks, "Strong technical alignment with expected keywords.")
	}

	if score.Clarity < 70 {
		remarks = append(remarks, "Usage of filler words detected. Work on professional articulation.")
	}

	if score.TimeEfficiency < 50 {
		remarks = append(remarks, "Response time was slow for this difficulty level.")
	} else if score.Bonus > 0 {
		remarks = append(remarks, "Excellent speed and accuracy streak!")
	}

	return strings.Join(remarks, " ")
}
