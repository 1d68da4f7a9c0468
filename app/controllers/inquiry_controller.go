package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/bind"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/middleware"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// InquiryController serves the public contact form. Submissions from a
// signed-in session are linked to the account automatically.
type InquiryController struct {
	service *services.InquiryService
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{service: services.NewInquiryService(db)}
}

// Create accepts a contact-form submission.
func (c *InquiryController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateInquiryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	var userID *uint
	if id, ok := middleware.UserIDFromCtx(r); ok {
		userID = &id
	}

	inquiry, err := c.service.Create(userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.CreatedMessage(w, "Thanks for reaching out. We'll be in touch shortly.", inquiry)
}
