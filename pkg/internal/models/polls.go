package models

type Category struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Polls       []Poll `json:"polls" gorm:"many2many:poll_categories"`
}

// Poll is the only concrete question kind for now; future kinds share
// the title / description / categories / visibility shape.
type Poll struct {
	BaseModel

	Title       string     `json:"title" validate:"required,max=50"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories" gorm:"many2many:poll_categories"`

	// Visibility acts as the deletion marker, a hidden poll is treated
	// as deleted but keeps its options and votes.
	Visibility bool `json:"visibility" gorm:"default:true"`

	AccountID uint         `json:"account_id"`
	Options   []PollOption `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`

	Metric PollMetric `json:"metric" gorm:"-"`
}

type PollMetric struct {
	TotalVote int64           `json:"total_vote"`
	ByOptions map[string]uint `json:"by_options"`
}

type PollOption struct {
	BaseModel

	QuestionID uint   `json:"question_id" gorm:"uniqueIndex:idx_poll_choices"`
	ChoiceText string `json:"choice_text" gorm:"uniqueIndex:idx_poll_choices" validate:"required,max=50"`

	// Votes is the running tally, denormalized from the vote ledger by
	// increment-on-write.
	Votes uint `json:"votes" gorm:"default:0"`
}

type Vote struct {
	BaseModel

	VoterID    uint       `json:"voter_id" gorm:"uniqueIndex:idx_poll_voters"`
	Voter      Account    `json:"voter"`
	QuestionID uint       `json:"question_id" gorm:"uniqueIndex:idx_poll_voters"`
	Question   Poll       `json:"question" gorm:"foreignKey:QuestionID"`
	OptionID   uint       `json:"option_id"`
	Option     PollOption `json:"option"`
}
