package catalog

import "strings"

type MealKind string

const (
	Meal1        MealKind = "MEAL_1"
	Meal2        MealKind = "MEAL_2"
	Meal3        MealKind = "MEAL_3"
	Meal4        MealKind = "MEAL_4"
	PreTraining  MealKind = "PRE_TRAINING"
	PostTraining MealKind = "POST_TRAINING"
	Meal5        MealKind = "MEAL_5"
	BeforeSleep  MealKind = "BEFORE_SLEEP"
)

// MealKinds is the canonical display order.
var MealKinds = []MealKind{Meal1, Meal2, Meal3, Meal4, PreTraining, PostTraining, Meal5, BeforeSleep}

type mealInfo struct {
	name    string
	content string
	icon    string
}

var meals = map[MealKind]mealInfo{
	Meal1:        {"Meal 1", "Warm water + lemon + 2 lean steaks 5% + 3 egg whites", "sunrise"},
	Meal2:        {"Meal 2", "140g chicken + ½ avocado", "sun.min"},
	Meal3:        {"Meal 3", "140g chicken + 100g cooked basmati rice", "sun.max"},
	Meal4:        {"Meal 4", "6 egg whites + 3 rice cakes", "cloud.sun"},
	PreTraining:  {"Pre-training", "1 banana + 1 scoop isolate", "figure.run"},
	PostTraining: {"Post-training", "2 fruit compotes + 2 scoops isolate", "figure.cooldown"},
	Meal5:        {"Meal 5", "2 lean steaks 5% + 200g cruciferous vegetables", "moon.haze"},
	BeforeSleep:  {"Before sleep", "0% fromage blanc + tuna + spinach + pecans", "moon.zzz"},
}

// mealTimes is the per day type schedule. Missing entries mean the meal
// does not exist for that day type.
var mealTimes = map[DayType]map[MealKind]string{
	DayEvening: {
		Meal1: "07:00", Meal2: "10:00", Meal3: "13:00", Meal4: "16:00",
		PreTraining: "19:50", PostTraining: "21:15", Meal5: "22:00", BeforeSleep: "23:30",
	},
	DayMidday: {
		Meal1: "07:00", Meal2: "09:30", Meal3: "12:00", PreTraining: "12:20",
		PostTraining: "13:45", Meal4: "16:00", Meal5: "19:00", BeforeSleep: "22:00",
	},
	DayAfternoon: {
		Meal1: "07:00", Meal2: "10:00", Meal3: "13:00", PreTraining: "16:50",
		PostTraining: "18:15", Meal4: "19:00", Meal5: "21:00", BeforeSleep: "23:00",
	},
	DayRest: {
		Meal1: "08:00", Meal2: "10:30", Meal3: "13:00", Meal4: "16:00",
		Meal5: "19:00", BeforeSleep: "22:00",
	},
}

// ParseMealKind decodes a stored meal kind, defaulting to Meal1.
func ParseMealKind(raw string) MealKind {
	key := MealKind(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := meals[key]; ok {
		return key
	}
	return Meal1
}

func (m MealKind) DisplayName() string { return meals[m].name }
func (m MealKind) Content() string     { return meals[m].content }
func (m MealKind) Icon() string        { return meals[m].icon }

// ScheduledTime looks up the HH:MM slot for the meal on a given day type.
func (m MealKind) ScheduledTime(dt DayType) (string, bool) {
	t, ok := mealTimes[dt][m]
	return t, ok
}

// IsAvailable reports whether the meal exists on the day type. Rest days
// have no pre/post training meals.
func (m MealKind) IsAvailable(dt DayType) bool {
	if dt == DayRest {
		return m != PreTraining && m != PostTraining
	}
	return true
}
