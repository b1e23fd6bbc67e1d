package seeds

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE diet_recommendations, user_profiles, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting profiles")
	if err := seedProfiles(ctx, pool, rng, 10); err != nil {
		return fmt.Errorf("seed profiles: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var demoUsers = []struct {
	username string
	password string
}{
	{"demo", "demo-pass-2024"},
	{"tester", "tester-pass-2024"},
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for i, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}

		base := i * 2
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, u.username, string(hash))
	}

	query := "INSERT INTO users (username, password_hash) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedProfiles(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	genders := []string{"male", "female"}
	goals := []string{"lose", "maintain", "gain", "muscle"}
	activityLevels := []string{"sedentary", "light", "moderate", "active", "very_active"}
	allergyPool := []string{"땅콩", "우유", "갑각류", "밀", "대두"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		userID := int64(i%len(demoUsers)) + 1
		age := rng.Intn(41) + 20
		gender := genders[rng.Intn(len(genders))]
		height := 150.0 + rng.Float64()*40
		weight := 45.0 + rng.Float64()*50
		goal := goals[rng.Intn(len(goals))]
		activity := activityLevels[rng.Intn(len(activityLevels))]
		mealsPerDay := 2 + rng.Intn(2)
		budget := (rng.Intn(16) + 2) * 5000

		allergies := []string{}
		if rng.Intn(3) == 0 {
			allergies = append(allergies, allergyPool[rng.Intn(len(allergyPool))])
		}
		allergiesJSON, err := json.Marshal(allergies)
		if err != nil {
			return fmt.Errorf("marshal allergies: %w", err)
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args, userID, age, gender, height, weight, goal, activity, mealsPerDay, allergiesJSON, budget)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO user_profiles (user_id, age, gender, height, weight, goal, activity_level, meals_per_day, allergies, budget) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}
