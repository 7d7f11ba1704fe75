package response

import "time"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccountID   int64     `json:"account_id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}
