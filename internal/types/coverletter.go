package types

// CoverLetter is the structured model behind the cover letter template.
type CoverLetter struct {
	Sender    Sender    `json:"sender"`
	Recipient Recipient `json:"recipient"`
	Title     string    `json:"title,omitempty"`
	Date      string    `json:"date"`
	Body      string    `json:"body"`
	Closing   string    `json:"closing"`
	Signature string    `json:"signature"`
}

// Sender is the letter author's contact block.
type Sender struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Recipient is the addressee block.
type Recipient struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Address string `json:"address"`
}
