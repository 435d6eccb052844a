package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE recommendations, user_preferences, wardrobe_items, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool, rng, 20); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting wardrobe items")
	if err := seedWardrobes(ctx, pool, rng, 20); err != nil {
		return fmt.Errorf("seed wardrobes: %w", err)
	}

	log.Println("[seed] inserting preferences")
	if err := seedPreferences(ctx, pool, 20); err != nil {
		return fmt.Errorf("seed preferences: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	firstNames := []string{"Alex", "Sam", "Jordan", "Casey", "Riley", "Morgan", "Quinn", "Avery", "Drew", "Reese"}
	lastNames := []string{"Lee", "Kim", "Patel", "Garcia", "Nguyen", "Smith", "Brown", "Okafor", "Silva", "Haddad"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := i * 2
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, name, createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO users (name, created_at) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

type catalogItem struct {
	itemType   string
	category   string
	material   string
	insulation float64
	styleTags  []string
	dressCodes []string
	seasonTags []string
}

var catalog = []catalogItem{
	{"top", "t-shirt", "cotton", 2, []string{"casual", "basic"}, []string{"casual", "loungewear"}, []string{"spring", "summer"}},
	{"top", "oxford shirt", "cotton", 3, []string{"classic"}, []string{"business_casual", "formal"}, []string{"spring", "autumn"}},
	{"top", "sweater", "wool", 7, []string{"cozy"}, []string{"casual", "business_casual"}, []string{"autumn", "winter"}},
	{"top", "hoodie", "fleece", 6, []string{"casual", "streetwear"}, []string{"casual", "athletic"}, []string{"autumn", "winter"}},
	{"top", "performance tee", "mesh", 1, []string{"sporty"}, []string{"athletic"}, []string{"summer"}},
	{"bottom", "jeans", "denim", 5, []string{"casual", "classic"}, []string{"casual"}, []string{"all"}},
	{"bottom", "chinos", "cotton", 4, []string{"classic"}, []string{"business_casual"}, []string{"all"}},
	{"bottom", "wool trousers", "wool", 7, []string{"classic"}, []string{"formal", "business_casual"}, []string{"winter"}},
	{"bottom", "shorts", "cotton", 1, []string{"casual"}, []string{"casual", "athletic"}, []string{"summer"}},
	{"bottom", "joggers", "fleece", 5, []string{"sporty"}, []string{"athletic", "loungewear"}, []string{"autumn", "winter"}},
	{"footwear", "sneakers", "canvas", 3, []string{"casual", "streetwear"}, []string{"casual", "athletic"}, []string{"all"}},
	{"footwear", "leather boots", "leather", 6, []string{"classic"}, []string{"casual", "business_casual"}, []string{"autumn", "winter"}},
	{"footwear", "dress shoes", "leather", 4, []string{"classic"}, []string{"formal", "business_casual"}, []string{"all"}},
	{"footwear", "running shoes", "mesh", 2, []string{"sporty"}, []string{"athletic"}, []string{"all"}},
	{"outerwear", "down jacket", "down", 10, []string{"cozy"}, []string{"casual"}, []string{"winter"}},
	{"outerwear", "wool coat", "wool", 9, []string{"classic"}, []string{"formal", "business_casual"}, []string{"winter"}},
	{"outerwear", "rain shell", "nylon", 5, []string{"sporty"}, []string{"casual", "athletic"}, []string{"spring", "autumn"}},
	{"outerwear", "denim jacket", "denim", 6, []string{"casual", "streetwear"}, []string{"casual"}, []string{"spring", "autumn"}},
	{"accessory", "scarf", "wool", 7, []string{"cozy"}, []string{"casual", "business_casual"}, []string{"winter"}},
	{"accessory", "silk tie", "silk", 3, []string{"classic"}, []string{"formal"}, []string{"all"}},
	{"headwear", "beanie", "wool", 8, []string{"casual", "cozy"}, []string{"casual"}, []string{"winter"}},
	{"headwear", "cap", "cotton", 4, []string{"casual", "sporty"}, []string{"casual", "athletic"}, []string{"summer"}},
}

var colors = []string{"black", "white", "navy", "grey", "olive", "beige", "burgundy", "blue"}

func seedWardrobes(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users int) error {
	rows := []string{}
	args := []any{}
	arg := 0

	for userID := 1; userID <= users; userID++ {
		count := 8 + rng.Intn(8)
		for j := 0; j < count; j++ {
			c := catalog[rng.Intn(len(catalog))]
			color := colors[rng.Intn(len(colors))]

			// Roughly a third of items carry no insulation value so the
			// resolver's heuristic table gets exercised.
			var insulation any
			if rng.Float64() > 0.34 {
				insulation = c.insulation
			}

			// Some items were worn recently, some long ago, some never.
			var lastWorn any
			switch rng.Intn(3) {
			case 0:
				lastWorn = time.Now().AddDate(0, 0, -rng.Intn(14)-1)
			case 1:
				lastWorn = time.Now().AddDate(0, 0, -rng.Intn(90)-14)
			}

			placeholders := make([]string, 10)
			for i := range placeholders {
				arg++
				placeholders[i] = fmt.Sprintf("$%d", arg)
			}
			rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
			args = append(args, userID, c.itemType, c.category, c.material, color,
				insulation, c.styleTags, c.dressCodes, c.seasonTags, lastWorn)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO wardrobe_items
		(user_id, type, category, material, color, insulation, style_tags, dress_codes, season_tags, last_worn)
		VALUES ` + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedPreferences(ctx context.Context, pool *pgxpool.Pool, users int) error {
	for userID := 1; userID <= users; userID++ {
		if _, err := pool.Exec(ctx,
			`INSERT INTO user_preferences (user_id, colors, styles, materials, cooldown_days, temperature_sensitivity, version)
			VALUES ($1, '{}', '{}', '{}', 3, 0, 1)`,
			userID,
		); err != nil {
			return fmt.Errorf("insert preferences for user %d: %w", userID, err)
		}
	}
	return nil
}
