package game

import "math/rand"

// Question is an immutable text/category pair from the static bank.
type Question struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// QuestionBank returns the predefined questions, three per category.
func QuestionBank() []Question {
	return []Question{
		{
			Text:     "If you had to choose between saving a famous artist or a brilliant scientist in a crisis, who would you choose and why?",
			Category: "Ethical Dilemma",
		},
		{
			Text:     "Do you think it's ever justified to break a promise? Explain your reasoning.",
			Category: "Ethical Dilemma",
		},
		{
			Text:     "If you could implement one worldwide policy to address climate change, what would it be and why?",
			Category: "Ethical Dilemma",
		},
		{
			Text:     "If you could invent a new holiday, what would it celebrate and what traditions would it have?",
			Category: "Creative Scenario",
		},
		{
			Text:     "Describe a creature that might exist on another planet and explain how it adapted to its environment.",
			Category: "Creative Scenario",
		},
		{
			Text:     "If you could combine any two animals to create a new species, which would you choose and why?",
			Category: "Creative Scenario",
		},
		{
			Text:     "You have three boxes: one contains only apples, one contains only oranges, and one contains both apples and oranges. The boxes are labeled, but all labels are incorrect. You can take one piece of fruit from one box without looking inside. How can you label all boxes correctly?",
			Category: "Logical Puzzle",
		},
		{
			Text:     "If it takes 5 machines 5 minutes to make 5 widgets, how long would it take 100 machines to make 100 widgets?",
			Category: "Logical Puzzle",
		},
		{
			Text:     "A bat and ball cost $1.10 in total. The bat costs $1.00 more than the ball. How much does the ball cost?",
			Category: "Logical Puzzle",
		},
		{
			Text:     "Describe a time when you felt conflicted between what you wanted and what was right.",
			Category: "Emotional Situation",
		},
		{
			Text:     "What's something that made you change your mind about an important belief?",
			Category: "Emotional Situation",
		},
		{
			Text:     "If you could relive one day of your life, which would you choose and why?",
			Category: "Emotional Situation",
		},
		{
			Text:     "Do you think social media has overall been positive or negative for society? Explain your view.",
			Category: "Opinion",
		},
		{
			Text:     "What do you think is the most important skill for people to learn in today's world?",
			Category: "Opinion",
		},
		{
			Text:     "Do you believe space exploration should be a priority for humanity? Why or why not?",
			Category: "Opinion",
		},
	}
}

// SelectQuestions picks n questions for a game, taking one from each category
// first so the selection stays diverse, then filling from whatever remains.
func SelectQuestions(bank []Question, n int) []Question {
	byCategory := make(map[string][]Question)
	var categories []string
	for _, q := range bank {
		if _, seen := byCategory[q.Category]; !seen {
			categories = append(categories, q.Category)
		}
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}
	rand.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})

	var selected []Question
	for _, cat := range categories {
		if len(selected) >= n {
			break
		}
		qs := byCategory[cat]
		i := rand.Intn(len(qs))
		selected = append(selected, qs[i])
		byCategory[cat] = append(qs[:i:i], qs[i+1:]...)
	}

	var remaining []Question
	for _, cat := range categories {
		remaining = append(remaining, byCategory[cat]...)
	}
	rand.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	for len(selected) < n && len(remaining) > 0 {
		selected = append(selected, remaining[len(remaining)-1])
		remaining = remaining[:len(remaining)-1]
	}
	return selected
}
