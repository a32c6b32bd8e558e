package domain

import "time"

// Account types. The original schema calls this column "type"; "standard" is
// the only value registration ever assigns.
const (
	AccountTypeStandard = "standard"
	AccountTypeAdmin    = "admin"
)

// User is the identity record. PasswordHash and ForgottenPasswordCode are
// secrets and never serialized into responses.
type User struct {
	UserID       string `json:"id" dynamodbav:"user_id"`
	Username     string `json:"username" dynamodbav:"username"`
	Email        string `json:"email" dynamodbav:"email"`
	PasswordHash string `json:"-" dynamodbav:"password_hash"`
	AccountType  string `json:"account_type" dynamodbav:"account_type"`
	IsVerified   bool   `json:"is_verified" dynamodbav:"is_verified"`
	// ForgottenPasswordCode is a standing one-time secret generated at account
	// creation and rotated after every successful password reset. It is
	// independent of the email verification code.
	ForgottenPasswordCode string    `json:"-" dynamodbav:"forgotten_password_code"`
	CreatedAt             time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt             time.Time `json:"updated" dynamodbav:"updated_at"`
}

// RegistrationRequest carries the mandatory credentials plus the optional
// onboarding payload. Omitted onboarding fields fall back to defaults.
type RegistrationRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`

	Name      *string  `json:"name"`
	Surname   *string  `json:"surname"`
	Age       *int     `json:"age"`
	Weight    *float64 `json:"weight"`
	Height    *int     `json:"height"`
	BMI       *float64 `json:"bmi"`
	Lifestyle *string  `json:"lifestyle"`

	GoalType   *string  `json:"goal_type"`
	GoalWeight *float64 `json:"goal_weight"`
	GoalDate   *string  `json:"goal_date"` // expected format: YYYY-MM-DD

	CalorieLimit *int `json:"calorie_limit"`
	ProteinLimit *int `json:"protein_limit"`
	CarbLimit    *int `json:"carb_limit"`
	FatLimit     *int `json:"fat_limit"`
	WaterGoal    *int `json:"water_goal"`
}

// AvailabilityResponse reports whether a username/email pair is still free.
type AvailabilityResponse struct {
	UsernameAvailable bool   `json:"username_available"`
	EmailAvailable    bool   `json:"email_available"`
	Message           string `json:"message"`
}
