package api

import "time"

const (
	authCookieName = "trackify_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type goalInput struct {
	Title      string `json:"title"`
	TargetDays int    `json:"target_days"`
}

type titleInput struct {
	Title string `json:"title"`
}

type primaryInput struct {
	IsPrimary bool `json:"is_primary"`
}

type displayNameInput struct {
	DisplayName string `json:"display_name"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

type motivationInput struct {
	GoalID string `json:"goal_id"`
}
