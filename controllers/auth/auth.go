package authController

import (
	"errors"
	"lms/middleware"
	"lms/models"
	"lms/schemas"
	"lms/services"
	"lms/sessions"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const pendingCookie = "pending_registration"

var (
	api     *services.Client
	pending *sessions.PendingStore
)

func Setup(client *services.Client, store *sessions.PendingStore) {
	api = client
	pending = store
}

// Login signs in upstream and issues the portal session token
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*schemas.LoginForm)

	// Sign in against the LMS API
	session, err := api.Login(c.UserContext(), reqData.Email, reqData.Password)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to login!")
	}

	// Generate the portal token
	token, err := middleware.GenerateJWT(session.User, session.AccessToken)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  session.User,
	})
}

// Register creates the account upstream and remembers the email for the
// verify-email screen
func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*schemas.RegisterForm)

	user, err := api.Register(c.UserContext(), models.Registration{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     models.Role(reqData.Role),
	})
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to register!")
	}

	// Remember who registered for the verify-email screen
	entry, err := pending.Put(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error storing pending registration: %v", err)
	} else {
		c.Cookie(&fiber.Cookie{
			Name:     pendingCookie,
			Value:    entry.Handle,
			Expires:  entry.ExpiresAt,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! Check your email for the verification code.", user)
}

// PendingRegistration tells the verify-email screen who just registered
func PendingRegistration(c *fiber.Ctx) error {
	entry, err := pending.Get(c.Cookies(pendingCookie))
	if errors.Is(err, sessions.ErrRegistrationExpired) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration session expired!", nil)
	}
	if err != nil {
		log.Printf("Error loading pending registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending registration fetched!", entry)
}

func VerifyEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyEmail").(*schemas.VerifyEmailForm)

	if err := api.VerifyEmail(c.UserContext(), reqData.Email, reqData.Code); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to verify email!")
	}

	// Drop the pending registration and its cookie
	if handle := c.Cookies(pendingCookie); handle != "" {
		if err := pending.Remove(handle); err != nil {
			log.Printf("Error removing pending registration: %v", err)
		}
		c.Cookie(&fiber.Cookie{Name: pendingCookie, Value: "", Expires: time.Unix(0, 0), HTTPOnly: true})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}

// ResendVerification falls back to the pending registration's email
func ResendVerification(c *fiber.Ctx) error {
	email, _ := c.Locals("resendEmail").(string)
	if email == "" {
		entry, err := pending.Get(c.Cookies(pendingCookie))
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "Email is required!"})
		}
		email = entry.Email
	}

	if err := api.ResendVerification(c.UserContext(), email); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to resend verification email!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification email sent!", nil)
}

func Me(c *fiber.Ctx) error {
	user, err := api.Me(middleware.UpstreamContext(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch profile!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
