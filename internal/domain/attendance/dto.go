package attendance

// MonthlyStatistics is the submission-path summary of one employee's records
// for a period. TotalDays is the unweighted sum of the three counters; it is
// NOT the same number as the live distinct-date present count and the two must
// stay separate computations.
type MonthlyStatistics struct {
	TotalDays     int `json:"totalDays"`
	FullDays      int `json:"fullDays"`
	HalfDays      int `json:"halfDays"`
	NotCheckedOut int `json:"notCheckedOut"`
}

// RecordView is the wire shape of one attendance record in the PI detail view.
type RecordView struct {
	Date           string        `json:"date"`
	CheckinTime    string        `json:"checkinTime"`
	CheckoutTime   *string       `json:"checkoutTime"`
	SessionType    string        `json:"sessionType"`
	AttendanceType string        `json:"attendanceType"`
	IsFullDay      bool          `json:"isFullDay"`
	IsHalfDay      bool          `json:"isHalfDay"`
	IsCheckedOut   bool          `json:"isCheckedOut"`
	Location       *LocationView `json:"location,omitempty"`
	Photo          *PhotoView    `json:"photo,omitempty"`
	Audio          *AudioView    `json:"audio,omitempty"`
}

type LocationView struct {
	TakenLocation *string  `json:"takenLocation"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	County        *string  `json:"county"`
	State         *string  `json:"state"`
	Postcode      *string  `json:"postcode"`
	Address       *string  `json:"address"`
}

type PhotoView struct {
	URL string `json:"url"`
}

type AudioView struct {
	URL      string `json:"url"`
	Duration *int   `json:"duration,omitempty"`
}
