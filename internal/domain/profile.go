package domain

import "time"

// Onboarding defaults applied when registration omits the optional fields.
// Values mirror what the mobile onboarding flow pre-fills.
const (
	DefaultName      = "John"
	DefaultSurname   = "Doe"
	DefaultAge       = 25
	DefaultWeight    = 80.0
	DefaultHeight    = 180
	DefaultLifestyle = "active"
	DefaultBMI       = 24.69

	DefaultGoalType       = "maintain"
	DefaultGoalWeight     = 75.0
	DefaultGoalDeadlineIn = 3 // months from registration

	DefaultCalorieLimit = 2000
	DefaultProteinLimit = 150
	DefaultCarbLimit    = 250
	DefaultFatLimit     = 65
	DefaultWaterGoal    = 2500
)

// UserGoal is the weight target attached to a profile.
type UserGoal struct {
	GoalType   string    `json:"goal_type" dynamodbav:"goal_type"` // "lose" | "maintain" | "gain"
	GoalWeight float64   `json:"goal_weight" dynamodbav:"goal_weight"`
	Deadline   time.Time `json:"deadline" dynamodbav:"deadline"`
}

// UserInfo holds personal and body stats collected during onboarding.
type UserInfo struct {
	Name      string  `json:"name" dynamodbav:"name"`
	Surname   string  `json:"surname" dynamodbav:"surname"`
	Age       int     `json:"age" dynamodbav:"age"`
	Weight    float64 `json:"weight" dynamodbav:"weight"`
	Height    int     `json:"height" dynamodbav:"height"`
	Lifestyle string  `json:"lifestyle" dynamodbav:"lifestyle"`
	BMI       float64 `json:"bmi" dynamodbav:"bmi"`
}

// UserPreferences holds UI preferences, created with fixed defaults.
type UserPreferences struct {
	Language      string `json:"language" dynamodbav:"language"`
	DarkMode      bool   `json:"dark_mode" dynamodbav:"dark_mode"`
	Font          string `json:"font" dynamodbav:"font"`
	Notifications bool   `json:"notifications" dynamodbav:"notifications"`
}

// DailyLimits holds the per-day intake budget.
type DailyLimits struct {
	CalorieLimit int `json:"calorie_limit" dynamodbav:"calorie_limit"`
	ProteinLimit int `json:"protein_limit" dynamodbav:"protein_limit"`
	CarbLimit    int `json:"carb_limit" dynamodbav:"carb_limit"`
	FatLimit     int `json:"fat_limit" dynamodbav:"fat_limit"`
	WaterGoal    int `json:"water_goal" dynamodbav:"water_goal"`
}

// Profile is the dependent record created atomically with its User during
// registration. PK: user_id (1:1 with User).
type Profile struct {
	UserID      string          `json:"user_id" dynamodbav:"user_id"`
	Goal        UserGoal        `json:"goal" dynamodbav:"goal"`
	Info        UserInfo        `json:"info" dynamodbav:"info"`
	Preferences UserPreferences `json:"preferences" dynamodbav:"preferences"`
	Limits      DailyLimits     `json:"limits" dynamodbav:"limits"`
	CreatedAt   time.Time       `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time       `json:"updated" dynamodbav:"updated_at"`
}
