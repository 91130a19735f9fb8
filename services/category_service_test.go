package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeFood(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Grilled Chicken Salad", "Protein"}, // chicken beats salad
		{"chicken", "Protein"},
		{"Fried Rice", "Carbs"},
		{"banana", "Fruit"},
		{"Blueberries", "Fruit"},
		{"Caesar Salad", "Vegetables"},
		{"Greek Yogurt", "Dairy"},
		{"Ice Cream Sundae", "Sweets"},
		{"Cheeseburger", "Dairy"}, // cheese is checked before burger
		{"burger", "Fast Food"},
		{"Iced Coffee", "Drinks"},
		{"Peanuts", "Snacks"},
		{"Mystery Stew", "Other"},
		{"", "Other"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CategorizeFood(c.name), "food %q", c.name)
	}
}

func TestCategorizeFood_CaseInsensitive(t *testing.T) {
	assert.Equal(t, CategorizeFood("SALMON"), CategorizeFood("salmon"))
	assert.Equal(t, "Protein", CategorizeFood("SALMON"))
}

func TestResolveExerciseIcon_Defaults(t *testing.T) {
	assert.Equal(t, "running", ResolveExerciseIcon("run", nil))
	assert.Equal(t, "running", ResolveExerciseIcon("  Running ", nil))
	assert.Equal(t, "cycling", ResolveExerciseIcon("bike", nil))
	assert.Equal(t, "trophy", ResolveExerciseIcon("underwater hockey", nil))
}

func TestResolveExerciseIcon_CustomWinsOverDefault(t *testing.T) {
	mappings := []models.IconMapping{
		{Type: "sport", Key: "run", Icon: "fire"},
	}
	assert.Equal(t, "fire", ResolveExerciseIcon("run", mappings))
	// other types still fall through to defaults
	assert.Equal(t, "swimming", ResolveExerciseIcon("swim", mappings))
}

func TestResolveExerciseIcon_UnknownIconIgnored(t *testing.T) {
	mappings := []models.IconMapping{
		{Type: "sport", Key: "run", Icon: "sparkly-unicorn"},
	}
	assert.Equal(t, "running", ResolveExerciseIcon("run", mappings))
}

func TestResolveExerciseIcon_NonSportMappingIgnored(t *testing.T) {
	mappings := []models.IconMapping{
		{Type: "mood", Key: "run", Icon: "fire"},
	}
	assert.Equal(t, "running", ResolveExerciseIcon("run", mappings))
}
