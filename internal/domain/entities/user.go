package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// KYCStatus represents KYC verification status
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
	KYCStatusBlocked  KYCStatus = "blocked"
)

// KYCData holds the fields a user submits for identity verification.
// The document is an opaque reference produced by the upload collaborator.
type KYCData struct {
	FullName    string    `json:"fullName"`
	IDType      string    `json:"idType"`
	IDNumber    string    `json:"idNumber"`
	IDDocument  string    `json:"idDocument"`
	SubmittedAt null.Time `json:"submittedAt,omitempty"`
}

// TaskStats is the day-scoped task sub-record of a user. TodayDate is the
// UTC calendar date ("2006-01-02") the counters were last reset for;
// CompletedTasks maps task id to the date it was credited this cycle.
type TaskStats struct {
	TodayDate      string            `json:"todayDate"`
	TodaysProfit   float64           `json:"todaysProfit"`
	TotalProfit    float64           `json:"totalProfit"`
	TaskCount      int               `json:"taskCount"`
	CompletedTasks map[string]string `json:"completedTasks"`
}

// User represents a user and their ledger state
type User struct {
	ID                 uuid.UUID   `json:"id"`
	FullName           string      `json:"fullname"`
	Email              string      `json:"email"`
	PasswordHash       string      `json:"-"`
	GoogleID           null.String `json:"-"`
	ProfilePicture     string      `json:"profilePicture"`
	Role               UserRole    `json:"role"`
	ReferralCode       string      `json:"referralCode"`
	ReferredByCode     null.String `json:"referredBy,omitempty"`
	Balance            float64     `json:"balance"`
	FreezeBalance      float64     `json:"freezeBalance"`
	ReferralBalance    float64     `json:"referralBalance"`
	ReferralBonusTotal float64     `json:"referralBonus"`
	KYCStatus          KYCStatus   `json:"kycStatus"`
	KYCData            KYCData     `json:"kycData,omitempty"`
	IsBlocked          bool        `json:"isBlocked"`
	TaskStats          TaskStats   `json:"taskStats"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// DateOf formats a point in time as the UTC calendar date used by the
// daily cycle.
func DateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RollDayIfNeeded resets the day-scoped counters when the stored date lags
// behind today. TotalProfit survives the rollover. Returns true when a
// reset happened; calling it again on the same day is a no-op.
func (s *TaskStats) RollDayIfNeeded(today string) bool {
	if s.TodayDate == today {
		return false
	}
	s.TodayDate = today
	s.TodaysProfit = 0
	s.TaskCount = 0
	s.CompletedTasks = map[string]string{}
	return true
}

// CompletedToday reports whether the given task id was already credited
// for the current cycle.
func (s *TaskStats) CompletedToday(taskID, today string) bool {
	return s.CompletedTasks[taskID] == today
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	FullName        string `json:"fullname" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	ReferralCode    string `json:"referralCode"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInInput carries an already verified Google identity. Token
// verification happens outside this core.
type GoogleSignInInput struct {
	GoogleID string `json:"googleId" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Picture  string `json:"picture"`
}

// UpdateProfileInput represents input for updating profile fields
type UpdateProfileInput struct {
	FullName       string `json:"fullname"`
	ProfilePicture string `json:"profilePicture"`
}

// SubmitKYCInput represents input for a KYC submission
type SubmitKYCInput struct {
	FullName   string `json:"fullName" binding:"required"`
	IDType     string `json:"idType" binding:"required"`
	IDNumber   string `json:"idNumber" binding:"required"`
	IDDocument string `json:"idDocument"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ReferredUser is the public view of a user credited to a referrer
type ReferredUser struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
}

// ReferralInfoResponse represents the referral dashboard payload
type ReferralInfoResponse struct {
	ReferralCode    string         `json:"referralCode"`
	ReferralBalance float64        `json:"referralBalance"`
	Referred        []ReferredUser `json:"referred"`
}

// KYCStatusResponse represents the result of a KYC transition
type KYCStatusResponse struct {
	KYCStatus     KYCStatus `json:"kycStatus"`
	Balance       float64   `json:"balance"`
	FreezeBalance float64   `json:"freezeBalance"`
}
