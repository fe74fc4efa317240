package users

import "time"

// User is a stored account. PasswordHash is a bcrypt hash; the plaintext
// password never leaves the signup/login handlers.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile captures the self-reported background of a user.
type Profile struct {
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Education   string   `json:"education"`
	BoardScores string   `json:"boardScores"`
	Grades      string   `json:"grades"`
	ExamResults string   `json:"examResults"`
	Interests   []string `json:"interests"`
}
