package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"tasklist-api/domain/dto"
	"tasklist-api/domain/services"
	"tasklist-api/pkg/config"
	"tasklist-api/pkg/logger"
	"tasklist-api/pkg/utils"
)

type AuthHandler struct {
	userService  services.UserService
	googleConfig config.GoogleOAuthConfig
}

func NewAuthHandler(userService services.UserService, googleConfig config.GoogleOAuthConfig) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		googleConfig: googleConfig,
	}
}

// GoogleLogin redirect ไปยัง Google OAuth consent screen
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// state สำหรับ CSRF protection
	state := utils.GenerateRandomString(32)

	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   300, // 5 นาที
	})

	oauthURL := h.userService.GetGoogleOAuthURL(state)

	logger.InfoContext(ctx, "Redirecting to Google OAuth")

	return c.Redirect(oauthURL, fiber.StatusTemporaryRedirect)
}

// GoogleCallback รับ callback จาก Google OAuth
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	ctx := c.UserContext()

	code := c.Query("code")
	state := c.Query("state")
	errorParam := c.Query("error")

	frontendURL := h.googleConfig.FrontendURL

	if errorParam != "" {
		logger.WarnContext(ctx, "Google OAuth error", "error", errorParam)
		return c.Redirect(frontendURL+"/auth?error="+url.QueryEscape(errorParam), fiber.StatusTemporaryRedirect)
	}

	if code == "" {
		logger.WarnContext(ctx, "No code in Google callback")
		return c.Redirect(frontendURL+"/auth?error=no_code", fiber.StatusTemporaryRedirect)
	}

	// ตรวจสอบ state (CSRF protection)
	savedState := c.Cookies("oauth_state")
	if savedState == "" || savedState != state {
		logger.WarnContext(ctx, "Invalid OAuth state")
		return c.Redirect(frontendURL+"/auth?error=invalid_state", fiber.StatusTemporaryRedirect)
	}

	// ลบ state cookie
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
	})

	tokenResp, err := h.exchangeCodeForToken(code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange code for token", "error", err)
		return c.Redirect(frontendURL+"/auth?error=token_exchange_failed", fiber.StatusTemporaryRedirect)
	}

	googleUser, err := h.getGoogleUserInfo(tokenResp.AccessToken)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get Google user info", "error", err)
		return c.Redirect(frontendURL+"/auth?error=user_info_failed", fiber.StatusTemporaryRedirect)
	}

	token, user, err := h.userService.LoginOrRegisterWithGoogle(ctx, googleUser)
	if err != nil {
		logger.WarnContext(ctx, "Google login/register failed", "error", err)
		return c.Redirect(frontendURL+"/auth?error=login_failed", fiber.StatusTemporaryRedirect)
	}

	logger.InfoContext(ctx, "Google auth successful", "user_id", user.ID, "email", user.Email)

	redirectURL := frontendURL + "/auth/callback?token=" + url.QueryEscape(token)

	return c.Redirect(redirectURL, fiber.StatusTemporaryRedirect)
}

// Logout revoke session ของ token ปัจจุบัน
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userService.Logout(ctx, user.TokenID); err != nil {
		logger.ErrorContext(ctx, "Logout failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

// exchangeCodeForToken แลก authorization code เป็น access token
func (h *AuthHandler) exchangeCodeForToken(code string) (*dto.GoogleTokenResponse, error) {
	data := url.Values{}
	data.Set("client_id", h.googleConfig.ClientID)
	data.Set("client_secret", h.googleConfig.ClientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", h.googleConfig.RedirectURL)

	resp, err := http.PostForm("https://oauth2.googleapis.com/token", data)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var tokenResp dto.GoogleTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, err
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token exchange returned no access token")
	}

	return &tokenResp, nil
}

// getGoogleUserInfo ดึงข้อมูล user จาก Google API
func (h *AuthHandler) getGoogleUserInfo(accessToken string) (*dto.GoogleUserInfo, error) {
	req, err := http.NewRequest("GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo dto.GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
