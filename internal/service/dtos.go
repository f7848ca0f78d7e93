package service

// DailyScore is one entry of a daily category series.
type DailyScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// WeeklyScore is one entry of a weekly category series, keyed by ISO year and week.
type WeeklyScore struct {
	Year  int `json:"year"`
	Week  int `json:"week"`
	Score int `json:"score"`
}

// CategoryScores is the per-category aggregate for a window. Exactly one of
// Dates and Weeks is populated, depending on the window length.
type CategoryScores struct {
	Category   string        `json:"category"`
	Score      int           `json:"score"`
	RatingsSum int           `json:"ratings_sum"`
	Dates      []DailyScore  `json:"dates,omitempty"`
	Weeks      []WeeklyScore `json:"weeks,omitempty"`
}

type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// TicketScores lists one CategoryScore per rating of the ticket, in fetch order.
type TicketScores struct {
	TicketID   int64           `json:"ticket_id"`
	Categories []CategoryScore `json:"categories"`
}

type ScoreChange struct {
	FirstPeriodScore  int `json:"first_period_score"`
	SecondPeriodScore int `json:"second_period_score"`
	ChangePercentage  int `json:"change_percentage"`
}
