package walletValidator

import (
	"lms/middleware"
	"lms/models"
	"lms/schemas"
	"lms/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RequestWithdrawal() fiber.Handler {
	return validators.Form[schemas.WithdrawalForm]("validatedWithdrawal")
}

func RejectWithdrawal() fiber.Handler {
	return validators.Form[schemas.RejectWithdrawalForm]("validatedRejection")
}

func WithdrawalID() fiber.Handler {
	return validators.IDs(map[string]string{"withdrawal_id": "Withdrawal ID"})
}

// ListWithdrawals validates the status filter and paging
func ListWithdrawals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := models.WithdrawalStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
		switch status {
		case "", models.WithdrawalPending, models.WithdrawalApproved, models.WithdrawalRejected:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PENDING, APPROVED or REJECTED!",
			})
		}

		c.Locals("withdrawalFilter", models.WithdrawalFilter{
			Status:    status,
			PageQuery: validators.Page(c),
		})
		return c.Next()
	}
}
