// Package seed fills the database with fake users and recipes for local development.
package seed

import (
	"context"
	"fmt"
	"strings"

	"recipe_hub/internal/domain"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

// Options control how much data Run generates
type Options struct {
	Users          int    // Users to create
	RecipesPerUser int    // Recipes per user
	Password       string // Password shared by every seeded user
}

// Result counts what Run inserted
type Result struct {
	Users   int
	Recipes int
}

// Run clears both tables and inserts fresh fake data in a single transaction.
func Run(ctx context.Context, gdb *gorm.DB, faker *gofakeit.Faker, opts Options) (Result, error) {
	users := make([]domain.User, opts.Users)
	for i := range users {
		users[i] = domain.User{
			Username: fmt.Sprintf("%s%d", faker.Username(), i), // Suffix keeps names unique
			ImageURL: faker.URL(),
			Bio:      faker.Sentence(6 + faker.IntN(10)),
		}
		if err := users[i].SetPassword(opts.Password); err != nil {
			return Result{}, err
		}
		users[i].Recipes = make([]domain.Recipe, opts.RecipesPerUser)
		for j := range users[i].Recipes {
			minutes := 5 + faker.IntN(176)
			users[i].Recipes[j] = domain.Recipe{
				Title:             recipeTitle(faker),
				Instructions:      instructions(faker),
				MinutesToComplete: &minutes,
			}
		}
	}

	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&domain.Recipe{}).Error; err != nil {
			return fmt.Errorf("clear recipes: %w", err)
		}
		if err := global.Delete(&domain.User{}).Error; err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		if len(users) == 0 {
			return nil
		}
		// Recipes are inserted through the association with their owner
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Users: opts.Users, Recipes: opts.Users * opts.RecipesPerUser}, nil
}

func recipeTitle(faker *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string { return f.Dinner() },
		func(f *gofakeit.Faker) string { return f.Lunch() },
		func(f *gofakeit.Faker) string { return f.Breakfast() },
		func(f *gofakeit.Faker) string { return fmt.Sprintf("%s %s", titleCase(f.Adjective()), f.Dessert()) },
	}
	return patterns[faker.IntN(len(patterns))](faker)
}

// instructions returns sentences until the minimum length is met
func instructions(faker *gofakeit.Faker) string {
	var b strings.Builder
	for b.Len() < domain.MinInstructionsLength {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(faker.Sentence(8 + faker.IntN(12)))
	}
	return b.String()
}

func titleCase(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
