package walletController

import (
	"lms/middleware"
	"lms/models"
	"lms/schemas"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

var api *services.Client

func Setup(client *services.Client) {
	api = client
}

// ListWithdrawals lists the caller's requests for mentors and all requests for managers
func ListWithdrawals(c *fiber.Ctx) error {
	filter := c.Locals("withdrawalFilter").(models.WithdrawalFilter)

	withdrawals, err := api.ListWithdrawals(middleware.UpstreamContext(c), filter)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch withdrawals!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawals fetched successfully!", withdrawals)
}

func RequestWithdrawal(c *fiber.Ctx) error {
	reqData := c.Locals("validatedWithdrawal").(*schemas.WithdrawalForm)

	withdrawal, err := api.RequestWithdrawal(middleware.UpstreamContext(c), models.WithdrawalRequest{
		Amount: reqData.Amount,
		Method: reqData.Method,
		Note:   reqData.Note,
	})
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to request withdrawal!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Withdrawal requested successfully!", withdrawal)
}

func ApproveWithdrawal(c *fiber.Ctx) error {
	withdrawal, err := api.ApproveWithdrawal(middleware.UpstreamContext(c), c.Locals("withdrawal_id").(uint))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to approve withdrawal!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal approved successfully!", withdrawal)
}

func RejectWithdrawal(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRejection").(*schemas.RejectWithdrawalForm)

	// The note is shown to the mentor
	withdrawal, err := api.RejectWithdrawal(middleware.UpstreamContext(c), c.Locals("withdrawal_id").(uint), reqData.Note)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to reject withdrawal!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal rejected successfully!", withdrawal)
}
