package response

import (
	"tablebook/internal/usecase/commands"
)

type LoginResponse struct {
	StaffID string `json:"staff_id"`
	Role    string `json:"role"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func ToLoginResponse(result *commands.LoginResult) LoginResponse {
	return LoginResponse{
		StaffID: result.StaffID.String(),
		Role:    result.Role,
	}
}

func ToTokenResponse(pair *commands.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
