package auth

type SendOTPRequest struct {
	Phone string `json:"phone"` // E.164 phone number
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"` // Email address used for login
	Phone    string `json:"phone"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code"` // Code delivered via SendOTP
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Login string  `json:"login"`
	Phone string  `json:"phone"`
	OrgID *string `json:"org_id,omitempty"` // Active organization context, if any
}
