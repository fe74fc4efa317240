package quiz

// Question is one entry of the static bank. Multiple-choice questions carry
// Options and Answer; coding questions are open-ended and carry
// ExpectedKeywords instead.
type Question struct {
	ID               int      `json:"id"`
	Text             string   `json:"question"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Options          []string `json:"options,omitempty"`
	Answer           string   `json:"answer,omitempty"`
	ExpectedKeywords []string `json:"expectedKeywords,omitempty"`
}

// CategoryCoding is scored by keyword containment rather than exact answers.
const CategoryCoding = "coding_proficiency"

// categoryOrder fixes the iteration order over the bank.
var categoryOrder = []string{CategoryCoding, "logic", "analytical", "mathematics"}

var questionBank = map[string][]Question{
	CategoryCoding: {
		{
			ID:               1,
			Text:             "Write a Python function to check if a string is a palindrome.",
			Difficulty:       "medium",
			ExpectedKeywords: []string{"def", "return", "==", "string[::-1]"},
		},
		{
			ID:               2,
			Text:             "Implement a function to find the factorial of a number using recursion.",
			Difficulty:       "easy",
			ExpectedKeywords: []string{"def", "return", "recursion"},
		},
		{
			ID:               3,
			Text:             "Write a Python function to count the number of vowels in a string.",
			Difficulty:       "easy",
			ExpectedKeywords: []string{"def", "for", "in", "return"},
		},
		{
			ID:               4,
			Text:             "Implement a function to check if a number is prime.",
			Difficulty:       "medium",
			ExpectedKeywords: []string{"def", "for", "if", "return"},
		},
		{
			ID:               5,
			Text:             "Write a Python program to reverse the words in a sentence (not characters).",
			Difficulty:       "medium",
			ExpectedKeywords: []string{"split", "join", "return"},
		},
		{
			ID:               6,
			Text:             "Implement a function to compute the nth Fibonacci number iteratively.",
			Difficulty:       "medium",
			ExpectedKeywords: []string{"for", "range", "return"},
		},
	},
	"logic": {
		{
			ID:      1,
			Text:    "A farmer has 17 sheep, all but 9 run away. How many are left?",
			Options: []string{"8", "9", "17", "0"},
			Answer:  "9",
		},
		{
			ID:      2,
			Text:    "If 5 machines take 5 minutes to make 5 widgets, how long would 100 machines take to make 100 widgets?",
			Options: []string{"5", "10", "50", "100"},
			Answer:  "5",
		},
		{
			ID:      3,
			Text:    "A bat and a ball cost ₹1.10. The bat costs ₹1 more than the ball. How much is the ball?",
			Options: []string{"0.10", "0.05", "1.00", "0.15"},
			Answer:  "0.05",
		},
		{
			ID:      4,
			Text:    "If you have three apples and take away two, how many do you have?",
			Options: []string{"1", "2", "3", "0"},
			Answer:  "2",
		},
		{
			ID:   5,
			Text: "Two fathers and two sons go fishing. Each catches one fish, but only three fish are caught. How?",
			Options: []string{
				"One fish was shared",
				"One person lied",
				"They are grandfather, father, and son",
				"There was a counting mistake",
			},
			Answer: "They are grandfather, father, and son",
		},
		{
			ID:   6,
			Text: "You have a 3L jug and a 5L jug. How do you measure exactly 4L?",
			Options: []string{
				"Fill 5L jug, pour into 3L jug twice",
				"Fill 5L jug, pour into 3L jug, empty 3L jug, pour remaining 2L into 3L jug, fill 5L jug again and pour into 3L jug till full",
				"Just fill 3L jug and measure",
				"Impossible",
			},
			Answer: "Fill 5L jug, pour into 3L jug, empty 3L jug, pour remaining 2L into 3L jug, fill 5L jug again and pour into 3L jug till full",
		},
	},
	"analytical": {
		{
			ID:      1,
			Text:    "If the probability of rain tomorrow is 0.7, what is the probability it will not rain?",
			Options: []string{"0.3", "0.7", "0.5", "1.0"},
			Answer:  "0.3",
		},
		{
			ID:      2,
			Text:    "A train travels 60 km in 1.5 hours. What is its average speed?",
			Options: []string{"30", "40", "50", "60"},
			Answer:  "40",
		},
		{
			ID:      3,
			Text:    "The average of five numbers is 20. If one number is 10, what is the average of the remaining four?",
			Options: []string{"22.5", "20", "25", "21.25"},
			Answer:  "22.5",
		},
		{
			ID:      4,
			Text:    "A bag contains 6 red and 4 blue balls. What is the probability of drawing a red ball?",
			Options: []string{"0.4", "0.5", "0.6", "0.7"},
			Answer:  "0.6",
		},
		{
			ID:      5,
			Text:    "If A = 60% of B, and B = 120% of C, what percent of C is A?",
			Options: []string{"50", "60", "72", "80"},
			Answer:  "72",
		},
		{
			ID:      6,
			Text:    "A number is increased by 20% and then decreased by 20%. What is the net change?",
			Options: []string{"No change", "Increase of 4%", "Decrease of 4%", "Decrease of 20%"},
			Answer:  "Decrease of 4%",
		},
	},
	"mathematics": {
		{
			ID:      1,
			Text:    "Differentiate: f(x) = x^3 + 5x^2 - 4x + 7",
			Options: []string{"3x^2 + 10x - 4", "3x^2 + 5x - 4", "x^3 + 10x - 4", "3x^2 + 10x + 4"},
			Answer:  "3x^2 + 10x - 4",
		},
		{
			ID:      2,
			Text:    "If sin²θ + cos²θ = 1 and sinθ = 3/5, find cosθ.",
			Options: []string{"4/5", "3/5", "√3/5", "1/5"},
			Answer:  "4/5",
		},
		{
			ID:      3,
			Text:    "Find the determinant of the matrix [[1, 2], [3, 4]]",
			Options: []string{"-2", "-1", "2", "1"},
			Answer:  "-2",
		},
		{
			ID:      4,
			Text:    "Evaluate the integral ∫ x² dx",
			Options: []string{"x³/3 + C", "x²/2 + C", "2x + C", "3x² + C"},
			Answer:  "x³/3 + C",
		},
		{
			ID:      5,
			Text:    "If x + 1/x = 4, find x² + 1/x².",
			Options: []string{"14", "15", "16", "8"},
			Answer:  "14",
		},
		{
			ID:      6,
			Text:    "Solve for x: 2x + 3 = 7",
			Options: []string{"2", "3", "4", "5"},
			Answer:  "2",
		},
	},
}
