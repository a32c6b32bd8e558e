package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/biteright/biteright-api/internal/domain"
)

var validLifestyles = map[string]bool{
	"sedentary": true, "light": true, "moderate": true, "active": true, "athlete": true,
}

var validGoalTypes = map[string]bool{
	"lose": true, "maintain": true, "gain": true,
}

// validateOnboarding range-checks the optional profile fields of a
// registration request. Absent fields are fine; they get defaults later.
func validateOnboarding(req *domain.RegistrationRequest) error {
	bad := func(msg string) error { return fmt.Errorf("%s: %w", msg, domain.ErrBadRequest) }

	if req.Name != nil && (strings.TrimSpace(*req.Name) == "" || len(*req.Name) > 50) {
		return bad("name must be between 1 and 50 characters")
	}
	if req.Surname != nil && (strings.TrimSpace(*req.Surname) == "" || len(*req.Surname) > 50) {
		return bad("surname must be between 1 and 50 characters")
	}
	if req.Age != nil && (*req.Age < 13 || *req.Age > 120) {
		return bad("age must be between 13 and 120")
	}
	if req.Weight != nil && (*req.Weight < 20 || *req.Weight > 500) {
		return bad("weight must be between 20 and 500 kg")
	}
	if req.Height != nil && (*req.Height < 100 || *req.Height > 250) {
		return bad("height must be between 100 and 250 cm")
	}
	if req.BMI != nil && (*req.BMI < 10 || *req.BMI > 100) {
		return bad("bmi must be between 10 and 100")
	}
	if req.Lifestyle != nil && !validLifestyles[strings.ToLower(*req.Lifestyle)] {
		return bad("lifestyle must be one of: sedentary, light, moderate, active, athlete")
	}
	if req.GoalType != nil && !validGoalTypes[strings.ToLower(*req.GoalType)] {
		return bad("goal type must be one of: lose, maintain, gain")
	}
	if req.GoalWeight != nil && (*req.GoalWeight < 20 || *req.GoalWeight > 500) {
		return bad("goal weight must be between 20 and 500 kg")
	}
	if req.CalorieLimit != nil && (*req.CalorieLimit < 800 || *req.CalorieLimit > 10000) {
		return bad("calorie limit must be between 800 and 10000")
	}
	if req.ProteinLimit != nil && (*req.ProteinLimit < 0 || *req.ProteinLimit > 1000) {
		return bad("protein limit must be between 0 and 1000 grams")
	}
	if req.CarbLimit != nil && (*req.CarbLimit < 0 || *req.CarbLimit > 2000) {
		return bad("carb limit must be between 0 and 2000 grams")
	}
	if req.FatLimit != nil && (*req.FatLimit < 0 || *req.FatLimit > 500) {
		return bad("fat limit must be between 0 and 500 grams")
	}
	if req.WaterGoal != nil && (*req.WaterGoal < 0 || *req.WaterGoal > 10000) {
		return bad("water goal must be between 0 and 10000 ml")
	}
	return nil
}

// buildProfile assembles the dependent profile record, filling every omitted
// onboarding field with its default. An unparseable goal date falls back to
// the default deadline rather than failing registration.
func buildProfile(userID string, req *domain.RegistrationRequest, now time.Time) *domain.Profile {
	deadline := now.AddDate(0, domain.DefaultGoalDeadlineIn, 0)
	if req.GoalDate != nil && *req.GoalDate != "" {
		if d, err := time.Parse("2006-01-02", *req.GoalDate); err == nil {
			deadline = d
		}
	}
	return &domain.Profile{
		UserID: userID,
		Goal: domain.UserGoal{
			GoalType:   strOr(req.GoalType, domain.DefaultGoalType),
			GoalWeight: floatOr(req.GoalWeight, domain.DefaultGoalWeight),
			Deadline:   deadline,
		},
		Info: domain.UserInfo{
			Name:      strOr(req.Name, domain.DefaultName),
			Surname:   strOr(req.Surname, domain.DefaultSurname),
			Age:       intOr(req.Age, domain.DefaultAge),
			Weight:    floatOr(req.Weight, domain.DefaultWeight),
			Height:    intOr(req.Height, domain.DefaultHeight),
			Lifestyle: strOr(req.Lifestyle, domain.DefaultLifestyle),
			BMI:       floatOr(req.BMI, domain.DefaultBMI),
		},
		Preferences: domain.UserPreferences{
			Language:      "english",
			DarkMode:      true,
			Font:          "arial",
			Notifications: true,
		},
		Limits: domain.DailyLimits{
			CalorieLimit: intOr(req.CalorieLimit, domain.DefaultCalorieLimit),
			ProteinLimit: intOr(req.ProteinLimit, domain.DefaultProteinLimit),
			CarbLimit:    intOr(req.CarbLimit, domain.DefaultCarbLimit),
			FatLimit:     intOr(req.FatLimit, domain.DefaultFatLimit),
			WaterGoal:    intOr(req.WaterGoal, domain.DefaultWaterGoal),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func strOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
