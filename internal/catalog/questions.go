package catalog

import "github.com/readle-app/readle/internal/services"

var frequencyOptions = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}

var quizQuestions = []services.QuizQuestion{
	{ID: 1, Question: "Does your child have difficulty learning the alphabet?", Options: frequencyOptions},
	{ID: 2, Question: "Does your child struggle to identify rhyming words?", Options: frequencyOptions},
	{ID: 3, Question: "Does your child have trouble sounding out unfamiliar words?", Options: frequencyOptions},
	{ID: 4, Question: "Does your child confuse letters that look similar (like b/d, p/q)?", Options: frequencyOptions},
	{ID: 5, Question: "Does your child read slowly compared to peers?", Options: frequencyOptions},
	{ID: 6, Question: "Does your child avoid reading aloud?", Options: frequencyOptions},
	{ID: 7, Question: "Does your child have difficulty remembering what they've read?", Options: frequencyOptions},
	{ID: 8, Question: "Does your child frequently spell the same word differently?", Options: frequencyOptions},
	{ID: 9, Question: "Does your child struggle with organizing thoughts in writing?", Options: frequencyOptions},
	{ID: 10, Question: "Does your child have a family history of reading difficulties?", Options: []string{"No", "Not sure", "Yes"}},
}

// QuizQuestions returns the fixed screening question set.
func QuizQuestions() []services.QuizQuestion {
	return append([]services.QuizQuestion(nil), quizQuestions...)
}
