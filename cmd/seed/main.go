package main

import (
	"fmt"
	"log"

	"github.com/anirudh21-ch/elearn/database"
	"github.com/anirudh21-ch/elearn/models"
	"github.com/joho/godotenv"
)

var sampleCourses = []struct {
	Title       string
	Description string
	Questions   [][2]string
}{
	{
		Title:       "Algebra",
		Description: "Linear equations and polynomials",
		Questions: [][2]string{
			{"Solve 2x + 3 = 11", "4"},
			{"Factor x^2 - 9", "(x-3)(x+3)"},
		},
	},
	{
		Title:       "World History",
		Description: "From antiquity to the modern era",
		Questions: [][2]string{
			{"In which year did the Roman Empire in the West fall?", "476"},
		},
	},
	{
		Title:       "Intro to Programming",
		Description: "",
		Questions: [][2]string{
			{"What does CPU stand for?", "central processing unit"},
			{"What is 0b1010 in decimal?", "10"},
		},
	},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	fmt.Println("🌱 Starting course seed...")

	totalCourses := 0
	totalQuizzes := 0

	for _, sample := range sampleCourses {
		var count int64
		db.Model(&models.Course{}).Where("title = ?", sample.Title).Count(&count)
		if count > 0 {
			continue
		}

		course := models.Course{
			Title:       sample.Title,
			Description: sample.Description,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", sample.Title, err)
		}
		totalCourses++

		for _, q := range sample.Questions {
			quiz := models.Quiz{
				CourseID: course.ID,
				Question: q[0],
				Answer:   q[1],
			}
			if err := db.Create(&quiz).Error; err != nil {
				log.Fatalf("Failed to create quiz for %q: %v", sample.Title, err)
			}
			totalQuizzes++
		}
	}

	fmt.Printf("✅ Seeded %d courses and %d quiz questions\n", totalCourses, totalQuizzes)
}
