package loadgen

import "time"

// Config holds configuration for a load run.
type Config struct {
	BaseURL     string        // Base URL of the service
	FixturePath string        // Seed fixture the service was started with
	Rounds      int           // Submissions per participant per workout
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Verbose     bool          // Enable verbose logging
}

// submission is a single prepared result POST.
type submission struct {
	CategoryID string
	WorkoutID  string
	Body       submitBody
}

// submitBody mirrors the result submission request.
type submitBody struct {
	ParticipantID string `json:"participant_id"`
	Team          bool   `json:"team"`
	RawValue      string `json:"raw_value"`
	Finalized     bool   `json:"finalized"`
}

// resultEntry mirrors one row of a workout result board.
type resultEntry struct {
	ParticipantID string `json:"participant_id"`
	Position      int    `json:"position"`
	Value         string `json:"value"`
}

// rankingEntry mirrors one row of a category ranking.
type rankingEntry struct {
	ParticipantID string         `json:"participant_id"`
	TotalScore    int            `json:"total_score"`
	Positions     map[string]int `json:"positions"`
}

// Stats holds run statistics.
type Stats struct {
	Submitted        int
	Successful       int
	Rejected         int
	Failed           int
	WorkoutsVerified int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
