// services/category_service.go
package services

import (
	"context"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// foodKeywords maps substrings of food names to nutrition categories. Matching
// is case-insensitive, first match wins in declaration order. This is a
// best-effort heuristic, not an authoritative classifier: "Grilled Chicken
// Salad" lands in Protein because "chicken" is checked before "salad".
var foodKeywords = []struct {
	Keyword  string
	Category string
}{
	{"chicken", "Protein"},
	{"beef", "Protein"},
	{"pork", "Protein"},
	{"fish", "Protein"},
	{"salmon", "Protein"},
	{"tuna", "Protein"},
	{"egg", "Protein"},
	{"tofu", "Protein"},
	{"bean", "Protein"},
	{"lentil", "Protein"},
	{"turkey", "Protein"},
	{"shrimp", "Protein"},
	{"rice", "Carbs"},
	{"pasta", "Carbs"},
	{"bread", "Carbs"},
	{"potato", "Carbs"},
	{"noodle", "Carbs"},
	{"oat", "Carbs"},
	{"cereal", "Carbs"},
	{"bagel", "Carbs"},
	{"tortilla", "Carbs"},
	{"apple", "Fruit"},
	{"banana", "Fruit"},
	{"orange", "Fruit"},
	{"berr", "Fruit"}, // berry/berries
	{"grape", "Fruit"},
	{"mango", "Fruit"},
	{"melon", "Fruit"},
	{"peach", "Fruit"},
	{"pear", "Fruit"},
	{"salad", "Vegetables"},
	{"broccoli", "Vegetables"},
	{"spinach", "Vegetables"},
	{"carrot", "Vegetables"},
	{"tomato", "Vegetables"},
	{"pepper", "Vegetables"},
	{"cucumber", "Vegetables"},
	{"kale", "Vegetables"},
	{"vegetable", "Vegetables"},
	{"milk", "Dairy"},
	{"cheese", "Dairy"},
	{"yogurt", "Dairy"},
	{"yoghurt", "Dairy"},
	{"butter", "Dairy"},
	{"chocolate", "Sweets"},
	{"cookie", "Sweets"},
	{"cake", "Sweets"},
	{"candy", "Sweets"},
	{"ice cream", "Sweets"},
	{"donut", "Sweets"},
	{"pizza", "Fast Food"},
	{"burger", "Fast Food"},
	{"fries", "Fast Food"},
	{"taco", "Fast Food"},
	{"hot dog", "Fast Food"},
	{"coffee", "Drinks"},
	{"tea", "Drinks"},
	{"juice", "Drinks"},
	{"soda", "Drinks"},
	{"smoothie", "Drinks"},
	{"nut", "Snacks"},
	{"chips", "Snacks"},
	{"popcorn", "Snacks"},
	{"granola", "Snacks"},
}

// CategorizeFood maps a free-text food name to a nutrition category.
// Unmatched names go to "Other".
func CategorizeFood(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range foodKeywords {
		if strings.Contains(lower, kw.Keyword) {
			return kw.Category
		}
	}
	return "Other"
}

// defaultSportIcons is the built-in exercise type -> icon table.
var defaultSportIcons = map[string]string{
	"run":      "running",
	"running":  "running",
	"walk":     "walking",
	"walking":  "walking",
	"cycle":    "cycling",
	"cycling":  "cycling",
	"bike":     "cycling",
	"swim":     "swimming",
	"swimming": "swimming",
	"gym":      "dumbbell",
	"weights":  "dumbbell",
	"strength": "dumbbell",
	"yoga":     "yoga",
	"pilates":  "yoga",
	"hike":     "mountain",
	"hiking":   "mountain",
	"football": "ball",
	"soccer":   "ball",
	"basket":   "ball",
	"tennis":   "racket",
	"padel":    "racket",
	"climb":    "mountain",
	"row":      "rowing",
	"dance":    "music",
	"boxing":   "gloves",
}

// iconRegistry is the set of icon names the clients can render. A custom
// mapping pointing at an unknown icon is ignored and the default applies.
var iconRegistry = map[string]bool{
	"running": true, "walking": true, "cycling": true, "swimming": true,
	"dumbbell": true, "yoga": true, "mountain": true, "ball": true,
	"racket": true, "rowing": true, "music": true, "gloves": true,
	"trophy": true, "heart": true, "fire": true, "star": true,
}

const fallbackSportIcon = "trophy"

// ResolveExerciseIcon picks the icon for an exercise type. Precedence:
// per-user custom mapping, then built-in default, then the generic trophy.
func ResolveExerciseIcon(exerciseType string, mappings []models.IconMapping) string {
	key := strings.ToLower(strings.TrimSpace(exerciseType))
	for _, m := range mappings {
		if m.Type == "sport" && strings.EqualFold(m.Key, key) && iconRegistry[m.Icon] {
			return m.Icon
		}
	}
	if icon, ok := defaultSportIcons[key]; ok {
		return icon
	}
	return fallbackSportIcon
}

type IconService struct{ db *gorm.DB }

func NewIconService(db *gorm.DB) *IconService { return &IconService{db: db} }

func (s *IconService) ListSportMappings(ctx context.Context, userID uint) ([]models.IconMapping, error) {
	if userID == 0 {
		return nil, nil
	}
	var mappings []models.IconMapping
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, "sport").
		Find(&mappings).Error
	return mappings, err
}

// UpsertSportMapping creates or replaces the mapping for one exercise type.
func (s *IconService) UpsertSportMapping(ctx context.Context, userID uint, key, icon, customLabel string) (*models.IconMapping, error) {
	m := models.IconMapping{
		UserID:      userID,
		Type:        "sport",
		Key:         strings.ToLower(strings.TrimSpace(key)),
		Icon:        icon,
		CustomLabel: customLabel,
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND key = ?", userID, "sport", m.Key).
		Assign(models.IconMapping{Icon: icon, CustomLabel: customLabel}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
