package walletRoutes

import (
	walletControllers "lms/controllers/wallet"
	"lms/middleware"
	"lms/models"
	walletValidators "lms/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(router fiber.Router) {
	mentorGroup := router.Group("/mentor/withdrawals", middleware.JWTMiddleware, middleware.RequireRole(models.RoleMentor))
	mentorGroup.Get("/", walletValidators.ListWithdrawals(), walletControllers.ListWithdrawals)
	mentorGroup.Post("/", walletValidators.RequestWithdrawal(), walletControllers.RequestWithdrawal)

	managerGroup := router.Group("/manager/withdrawals", middleware.JWTMiddleware, middleware.RequireRole(models.RoleManager))
	managerGroup.Get("/", walletValidators.ListWithdrawals(), walletControllers.ListWithdrawals)
	managerGroup.Post("/:withdrawal_id/approve", walletValidators.WithdrawalID(), walletControllers.ApproveWithdrawal)
	managerGroup.Post("/:withdrawal_id/reject", walletValidators.WithdrawalID(), walletValidators.RejectWithdrawal(), walletControllers.RejectWithdrawal)
}
