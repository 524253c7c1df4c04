package model

// Summary is the per-user statistics block shown next to the trust score.
// Averages are truncated toward zero, matching how the dashboard displays them.
type Summary struct {
	UserID               string      `json:"user_id"`
	RollNo               int         `json:"roll_no"`
	HighestRating        float64     `json:"highest_rating"`
	ContestsParticipated int         `json:"contests_participated"`
	Plagiarisms          int         `json:"plagiarisms"`
	AverageIncrement     int         `json:"average_increment"`
	AverageRating        int         `json:"average_rating"`
	AverageRank          int         `json:"average_rank"`
	LatestRating         float64     `json:"latest_rating"`
	LatestRank           int         `json:"latest_rank"`
	LatestContest        string      `json:"latest_contest"`
	Stars                int         `json:"stars"`
	Credentials          Credentials `json:"credentials"`
}

// LatestEntry is a user's most recent contest row, ranked within the college.
type LatestEntry struct {
	CollegeRank int     `json:"college_rank"`
	UserID      string  `json:"user_id"`
	RollNo      int     `json:"roll_no"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Rank        int     `json:"rank"`
	Color       string  `json:"color,omitempty"`
	Stars       int     `json:"stars"`
	Reason      string  `json:"reason,omitempty"`
}

// ContestAverage holds contest-wide means for one contest code.
type ContestAverage struct {
	Code          string  `json:"code"`
	AverageRating float64 `json:"average_rating"`
	AverageRank   float64 `json:"average_rank"`
	Participants  int     `json:"participants"`
}

// SeriesPoint pairs a user's value in a contest with the contest-wide mean.
type SeriesPoint struct {
	Code    string  `json:"code"`
	User    float64 `json:"user"`
	Average float64 `json:"average"`
}

// Insights carries the chart series for a user's history.
type Insights struct {
	UserID    string         `json:"user_id"`
	Ratings   []SeriesPoint  `json:"ratings"`
	Ranks     []SeriesPoint  `json:"ranks"`
	Divisions map[string]int `json:"divisions"`
}
