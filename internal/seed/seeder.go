package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/quillhub/backend/internal/logger"
	"github.com/quillhub/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder fills the database with development data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a seeder instance.
func NewSeeder(db *gorm.DB) *Seeder {
	_ = gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// SeedDev seeds the development database with realistic data.
func (s *Seeder) SeedDev() error {
	logger.Log.Info("Creating users...")
	users, err := s.seedUsers(25)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Log.Info("Creating groups...")
	groups, err := s.seedGroups(6)
	if err != nil {
		return fmt.Errorf("failed to seed groups: %w", err)
	}

	logger.Log.Info("Creating posts...")
	posts, err := s.seedPosts(users, groups, 120)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	logger.Log.Info("Creating comments...")
	if err := s.seedComments(users, posts, 300); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	logger.Log.Info("Creating follow edges...")
	if err := s.seedFollows(users, 60); err != nil {
		return fmt.Errorf("failed to seed follows: %w", err)
	}

	logger.Log.Info("Seeding complete")
	return nil
}

func (s *Seeder) seedUsers(count int) ([]models.User, error) {
	// Every seeded account shares one password for local testing.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username:     fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:        fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			DisplayName:  gofakeit.Name(),
			PasswordHash: string(hash),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedGroups(count int) ([]models.Group, error) {
	groups := make([]models.Group, 0, count)
	for i := 0; i < count; i++ {
		noun := strings.ToLower(gofakeit.NounAbstract())
		group := models.Group{
			Title:       gofakeit.BookTitle(),
			Slug:        fmt.Sprintf("%s-%d", strings.ReplaceAll(noun, " ", "-"), i),
			Description: gofakeit.Sentence(12),
		}
		if err := s.db.Create(&group).Error; err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) seedPosts(users []models.User, groups []models.Group, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]

		post := models.Post{
			Text:     gofakeit.Paragraph(1, 3, 12, " "),
			AuthorID: author.ID,
		}
		// Roughly two thirds of posts get filed under a group.
		if rand.Intn(3) != 0 {
			group := groups[rand.Intn(len(groups))]
			post.GroupID = &group.ID
		}
		if err := s.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedComments(users []models.User, posts []models.Post, count int) error {
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := posts[rand.Intn(len(posts))]

		comment := models.Comment{
			Text:     gofakeit.Sentence(10),
			PostID:   &post.ID,
			AuthorID: &author.ID,
		}
		if err := s.db.Create(&comment).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedFollows(users []models.User, count int) error {
	for i := 0; i < count; i++ {
		follower := users[rand.Intn(len(users))]
		author := users[rand.Intn(len(users))]
		if follower.ID == author.ID {
			continue
		}

		var existing int64
		s.db.Model(&models.Follow{}).
			Where("follower_id = ? AND author_id = ?", follower.ID, author.ID).
			Count(&existing)
		if existing > 0 {
			continue
		}

		edge := models.Follow{FollowerID: follower.ID, AuthorID: author.ID}
		if err := s.db.Create(&edge).Error; err != nil {
			return err
		}
	}
	return nil
}
