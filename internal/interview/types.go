package interview

// CandidateProfile describes the person being interviewed.
type CandidateProfile struct {
	Name      string    `json:"name" yaml:"name"`
	Seniority Seniority `json:"seniority" yaml:"seniority"`
	Skills    []string  `json:"skills" yaml:"skills"`
}

// JobDescription describes the role the candidate is interviewing for.
type JobDescription struct {
	Role             string     `json:"role" yaml:"role"`
	RequiredSkills   []string   `json:"required_skills" yaml:"required_skills"`
	TargetDifficulty Difficulty `json:"target_difficulty" yaml:"target_difficulty"`
}

// Question is a single catalog entry. Questions are reference data and
// are never modified by the engine.
type Question struct {
	ID               string     `json:"id"`
	Skill            string     `json:"skill"`
	Difficulty       Difficulty `json:"difficulty"`
	Prompt           string     `json:"prompt"`
	ExpectedKeywords []string   `json:"expected_keywords"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`
}

// QuestionSource supplies the question pool for a session.
type QuestionSource interface {
	Questions() []Question
}

// Questions is a plain slice used as a QuestionSource.
type Questions []Question

// Questions implements QuestionSource.
func (q Questions) Questions() []Question { return q }

// Response is one answered question.
type Response struct {
	QuestionID     string  `json:"question_id"`
	Answer         string  `json:"answer"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	TimedOut       bool    `json:"timed_out"`
}

// ScoreBreakdown holds the per-dimension scores for one response.
// Every sub-score is in [0,100]; Overall is capped at 100.
type ScoreBreakdown struct {
	Accuracy       float64 `json:"accuracy"`
	Relevance      float64 `json:"relevance"`
	Clarity        float64 `json:"clarity"`
	TimeEfficiency float64 `json:"time_efficiency"`
	Bonus          float64 `json:"bonus"`
	Overall        float64 `json:"overall"`
}

// QuestionResult is one entry of the session history. State and
// Difficulty are the values active when the answer was received.
type QuestionResult struct {
	Index      int            `json:"index"`
	Question   Question       `json:"question"`
	Response   Response       `json:"response"`
	Score      ScoreBreakdown `json:"score"`
	State      State          `json:"state"`
	Difficulty Difficulty     `json:"difficulty"`
	Feedback   string         `json:"feedback"`
}

// InterviewResult is the final report of a finished session.
type InterviewResult struct {
	SessionID         string             `json:"session_id"`
	Candidate         CandidateProfile   `json:"candidate"`
	Role              string             `json:"role"`
	FinalScore        float64            `json:"final_score"`
	Readiness         string             `json:"readiness"`
	Category          string             `json:"category"`
	Confidence        float64            `json:"confidence"`
	SkillBreakdown    map[string]float64 `json:"skill_breakdown"`
	Strengths         []string           `json:"strengths"`
	Weaknesses        []string           `json:"weaknesses"`
	Suggestions       []string           `json:"suggestions"`
	Status            State              `json:"status"`
	TerminationReason string             `json:"termination_reason,omitempty"`
	History           []QuestionResult   `json:"history"`
	DecisionLog       []string           `json:"decision_log"`
}
