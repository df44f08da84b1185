package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/partners/partner/controller"
)

func PartnerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPartnerController(db)

	partners := api.Group("/partners")
	partners.Get("/", ctrl.GetPartners)
	partners.Post("/", ctrl.CreatePartner)
	partners.Get("/:id", ctrl.GetPartner)
	partners.Put("/:id", ctrl.UpdatePartner)
	partners.Patch("/:id", ctrl.UpdatePartner)
	partners.Delete("/:id", ctrl.DeletePartner)
}
