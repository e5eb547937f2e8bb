// Package seed loads a small demo dataset so a fresh instance starts with a
// populated feed. It runs only when the store is empty.
package seed

import (
	"log"

	"github.com/bridgegen/backend/internal/models"
	"gorm.io/gorm"
)

// Run inserts demo users, a week of word prompts, and a handful of posts with
// comments and a poll. No-op when any user already exists.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{ID: "user-matt", Name: "Matthew Ico", Initials: "MI", Age: 17, Type: models.UserTypeYouth},
			{ID: "user-1", Name: "Joel Lim", Initials: "JL", Age: 19, Type: models.UserTypeYouth},
			{ID: "user-2", Name: "Auntie Helen", Initials: "AH", Age: 68, Type: models.UserTypeSenior},
			{ID: "user-3", Name: "Maya Ng", Initials: "MN", Age: 22, Type: models.UserTypeYouth},
			{ID: "user-4", Name: "Ryan Tan", Initials: "RT", Age: 17, Type: models.UserTypeYouth},
			{ID: "user-5", Name: "Auntie Lily", Initials: "AL", Age: 65, Type: models.UserTypeSenior},
			{ID: "user-7", Name: "Uncle Chen", Initials: "UC", Age: 72, Type: models.UserTypeSenior},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		words := []models.Word{
			{Word: "Ang Mo", Phonetic: "[ ahng moh ]", Description: "A colloquial Hokkien term used in Singapore to refer to Caucasian people. Literally translates to \"red hair\" in Hokkien.", Challenge: "Share the origin of this word, tell us a memory about it, or teach us how to pronounce it correctly!", Date: "2025-01-28"},
			{Word: "Shiok", Phonetic: "[ shee-awk ]", Description: "A Singlish expression meaning extremely enjoyable, pleasurable, or satisfying.", Challenge: "Share a moment when you felt \"shiok\" - what made it so satisfying?", Date: "2025-01-27"},
			{Word: "Kiasu", Phonetic: "[ kee-ah-soo ]", Description: "A Hokkien term meaning \"afraid to lose\".", Challenge: "Are you kiasu? Share a funny kiasu story or moment you witnessed!", Date: "2025-01-26"},
			{Word: "Makan", Phonetic: "[ mah-kahn ]", Description: "A Malay word meaning \"to eat\". Commonly used in Singapore to refer to food or the act of eating.", Challenge: "What is your favorite makan spot?", Date: "2025-01-25"},
		}
		if err := tx.Create(&words).Error; err != nil {
			return err
		}
		angMo, makan := words[0].ID, words[3].ID

		posts := []models.Post{
			{ID: "post-1", UserID: "user-5", WordID: &angMo, Text: "The term 'ang mo' literally means 'red hair' in Hokkien. Back then, seeing one was quite rare! Now Singapore is so diverse - it's wonderful!", LikesCount: 0},
			{ID: "post-2", UserID: "user-3", WordID: &angMo, Text: "Overheard at the kopitiam: \"Wah that ang mo speak Hokkien better than my grandson!\"", LikesCount: 0},
			{ID: "post-20", UserID: "user-4", WordID: &makan, Text: "Maxwell Food Centre chicken rice is still the best makan spot. The queue is long but worth every minute.", LikesCount: 0},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return err
		}

		comments := []models.Comment{
			{ID: "c-1", PostID: "post-1", UserID: "user-4", Text: "Wow, I never knew it meant 'red hair'! Thanks for sharing the history!"},
			{ID: "c-2", PostID: "post-20", UserID: "user-7", Text: "Tian Tian or Ah Tai? This is the real chicken rice debate!"},
		}
		if err := tx.Create(&comments).Error; err != nil {
			return err
		}

		poll := models.Poll{ID: "poll-1", PostID: "post-20", Question: "Which chicken rice is the BEST?"}
		if err := tx.Omit("Options").Create(&poll).Error; err != nil {
			return err
		}
		options := []models.PollOption{
			{ID: "opt-1a", PollID: "poll-1", Text: "Tian Tian"},
			{ID: "opt-1b", PollID: "poll-1", Text: "Ah Tai"},
			{ID: "opt-1c", PollID: "poll-1", Text: "Boon Tong Kee"},
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}

		log.Println("Demo data seeded.")
		return nil
	})
}
