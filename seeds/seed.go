package seeds

import (
	"log"

	"github.com/ShivamH1/QuizApp/models"

	"gorm.io/gorm"
)

// Run inserts the demo quizzes and questions when the quiz table is empty.
// Existing data is never touched.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Quiz{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, quiz := range demoQuizzes() {
		if err := tx.Create(&quiz).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	questions := demoQuestions()
	if err := tx.Create(&questions).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	log.Printf("Seeded %d quizzes and %d questions", len(demoQuizzes()), len(questions))
	return nil
}

func demoQuizzes() []models.Quiz {
	return []models.Quiz{
		{
			ID:            "general-knowledge",
			Title:         "General Knowledge",
			Description:   "Test your knowledge across various topics including geography, history, and more.",
			Category:      "General",
			Difficulty:    models.DifficultyEasy,
			QuestionCount: 10,
		},
		{
			ID:            "science",
			Title:         "Science Quiz",
			Description:   "Explore questions about physics, chemistry, biology, and the natural world.",
			Category:      "Science",
			Difficulty:    models.DifficultyMedium,
			QuestionCount: 10,
		},
		{
			ID:            "programming",
			Title:         "Programming Fundamentals",
			Description:   "Test your programming knowledge with questions about languages and concepts.",
			Category:      "Technology",
			Difficulty:    models.DifficultyMedium,
			QuestionCount: 10,
		},
	}
}

func demoQuestions() []models.Question {
	return []models.Question{
		// General knowledge
		{QuizID: "general-knowledge", QuestionText: "What is the capital of France?", OptionA: "London", OptionB: "Berlin", OptionC: "Paris", OptionD: "Madrid", CorrectOption: models.OptionKeyC, OrderIndex: 1},
		{QuizID: "general-knowledge", QuestionText: "Which planet is known as the Red Planet?", OptionA: "Venus", OptionB: "Mars", OptionC: "Jupiter", OptionD: "Saturn", CorrectOption: models.OptionKeyB, OrderIndex: 2},
		{QuizID: "general-knowledge", QuestionText: "What is 2 + 2?", OptionA: "3", OptionB: "4", OptionC: "5", OptionD: "6", CorrectOption: models.OptionKeyB, OrderIndex: 3},
		{QuizID: "general-knowledge", QuestionText: "Who wrote \"Romeo and Juliet\"?", OptionA: "Charles Dickens", OptionB: "William Shakespeare", OptionC: "Jane Austen", OptionD: "Mark Twain", CorrectOption: models.OptionKeyB, OrderIndex: 4},
		{QuizID: "general-knowledge", QuestionText: "What is the largest ocean on Earth?", OptionA: "Atlantic Ocean", OptionB: "Indian Ocean", OptionC: "Arctic Ocean", OptionD: "Pacific Ocean", CorrectOption: models.OptionKeyD, OrderIndex: 5},
		{QuizID: "general-knowledge", QuestionText: "What year did World War II end?", OptionA: "1943", OptionB: "1944", OptionC: "1945", OptionD: "1946", CorrectOption: models.OptionKeyC, OrderIndex: 6},
		{QuizID: "general-knowledge", QuestionText: "What is the smallest prime number?", OptionA: "0", OptionB: "1", OptionC: "2", OptionD: "3", CorrectOption: models.OptionKeyC, OrderIndex: 7},
		{QuizID: "general-knowledge", QuestionText: "Which element has the chemical symbol \"O\"?", OptionA: "Gold", OptionB: "Oxygen", OptionC: "Silver", OptionD: "Osmium", CorrectOption: models.OptionKeyB, OrderIndex: 8},
		{QuizID: "general-knowledge", QuestionText: "How many continents are there?", OptionA: "5", OptionB: "6", OptionC: "7", OptionD: "8", CorrectOption: models.OptionKeyC, OrderIndex: 9},
		{QuizID: "general-knowledge", QuestionText: "In which year did the Titanic sink?", OptionA: "1910", OptionB: "1912", OptionC: "1914", OptionD: "1916", CorrectOption: models.OptionKeyB, OrderIndex: 10},

		// Science
		{QuizID: "science", QuestionText: "What is the chemical formula for water?", OptionA: "H2O", OptionB: "CO2", OptionC: "O2", OptionD: "H2O2", CorrectOption: models.OptionKeyA, OrderIndex: 1},
		{QuizID: "science", QuestionText: "What is the speed of light in vacuum?", OptionA: "300,000 km/s", OptionB: "150,000 km/s", OptionC: "450,000 km/s", OptionD: "600,000 km/s", CorrectOption: models.OptionKeyA, OrderIndex: 2},
		{QuizID: "science", QuestionText: "What force keeps planets in orbit around the sun?", OptionA: "Magnetic force", OptionB: "Gravitational force", OptionC: "Nuclear force", OptionD: "Electrical force", CorrectOption: models.OptionKeyB, OrderIndex: 3},
		{QuizID: "science", QuestionText: "What is the powerhouse of the cell?", OptionA: "Nucleus", OptionB: "Ribosome", OptionC: "Mitochondria", OptionD: "Chloroplast", CorrectOption: models.OptionKeyC, OrderIndex: 4},
		{QuizID: "science", QuestionText: "What is the atomic number of Carbon?", OptionA: "4", OptionB: "6", OptionC: "8", OptionD: "12", CorrectOption: models.OptionKeyB, OrderIndex: 5},
		{QuizID: "science", QuestionText: "What type of animal is a dolphin?", OptionA: "Fish", OptionB: "Amphibian", OptionC: "Reptile", OptionD: "Mammal", CorrectOption: models.OptionKeyD, OrderIndex: 6},
		{QuizID: "science", QuestionText: "What is the hardest natural substance on Earth?", OptionA: "Gold", OptionB: "Iron", OptionC: "Diamond", OptionD: "Quartz", CorrectOption: models.OptionKeyC, OrderIndex: 7},
		{QuizID: "science", QuestionText: "What gas do plants absorb from the atmosphere?", OptionA: "Oxygen", OptionB: "Nitrogen", OptionC: "Carbon Dioxide", OptionD: "Hydrogen", CorrectOption: models.OptionKeyC, OrderIndex: 8},
		{QuizID: "science", QuestionText: "What is the study of earthquakes called?", OptionA: "Meteorology", OptionB: "Seismology", OptionC: "Geology", OptionD: "Volcanology", CorrectOption: models.OptionKeyB, OrderIndex: 9},
		{QuizID: "science", QuestionText: "How many bones are in the adult human body?", OptionA: "186", OptionB: "206", OptionC: "226", OptionD: "246", CorrectOption: models.OptionKeyB, OrderIndex: 10},

		// Programming
		{QuizID: "programming", QuestionText: "What does HTML stand for?", OptionA: "Hyper Text Markup Language", OptionB: "High Tech Modern Language", OptionC: "Home Tool Markup Language", OptionD: "Hyperlinks and Text Markup Language", CorrectOption: models.OptionKeyA, OrderIndex: 1},
		{QuizID: "programming", QuestionText: "Which programming language is known for its use in web development?", OptionA: "Python", OptionB: "JavaScript", OptionC: "C++", OptionD: "Java", CorrectOption: models.OptionKeyB, OrderIndex: 2},
		{QuizID: "programming", QuestionText: "What does CSS stand for?", OptionA: "Computer Style Sheets", OptionB: "Creative Style Sheets", OptionC: "Cascading Style Sheets", OptionD: "Colorful Style Sheets", CorrectOption: models.OptionKeyC, OrderIndex: 3},
		{QuizID: "programming", QuestionText: "What is a variable in programming?", OptionA: "A fixed value", OptionB: "A container for storing data", OptionC: "A type of loop", OptionD: "A function", CorrectOption: models.OptionKeyB, OrderIndex: 4},
		{QuizID: "programming", QuestionText: "Which symbol is used for comments in JavaScript?", OptionA: "/* */", OptionB: "# ", OptionC: "<!-- -->", OptionD: "// ", CorrectOption: models.OptionKeyD, OrderIndex: 5},
		{QuizID: "programming", QuestionText: "What does API stand for?", OptionA: "Application Programming Interface", OptionB: "Advanced Programming Interface", OptionC: "Application Process Integration", OptionD: "Automated Programming Interface", CorrectOption: models.OptionKeyA, OrderIndex: 6},
		{QuizID: "programming", QuestionText: "Which data structure uses LIFO (Last In First Out)?", OptionA: "Queue", OptionB: "Stack", OptionC: "Array", OptionD: "Linked List", CorrectOption: models.OptionKeyB, OrderIndex: 7},
		{QuizID: "programming", QuestionText: "What is the purpose of a loop in programming?", OptionA: "To declare variables", OptionB: "To repeat code multiple times", OptionC: "To create functions", OptionD: "To handle errors", CorrectOption: models.OptionKeyB, OrderIndex: 8},
		{QuizID: "programming", QuestionText: "What does SQL stand for?", OptionA: "Structured Query Language", OptionB: "Simple Query Language", OptionC: "Standard Query Language", OptionD: "System Query Language", CorrectOption: models.OptionKeyA, OrderIndex: 9},
		{QuizID: "programming", QuestionText: "Which of these is NOT a programming paradigm?", OptionA: "Object-Oriented", OptionB: "Functional", OptionC: "Procedural", OptionD: "Circular", CorrectOption: models.OptionKeyD, OrderIndex: 10},
	}
}
