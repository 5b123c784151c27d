package contact

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotbray.GO/api"
	contactRepo "hotbray.GO/model/repository/contact"
	contactService "hotbray.GO/service/contact"
)

func init() {
	api.RegisterModule(RegisterContactRoutes)
}

func RegisterContactRoutes(root *echo.Group, deps *api.Deps) {
	svc := contactService.NewService(
		contactRepo.NewContactRepository(deps.DB),
		deps.Mailer,
		contactService.Options{Inbox: deps.Inbox},
	)

	root.POST("/contact/send", func(c echo.Context) error {
		body, err := api.BindMap(c)
		if err != nil {
			return api.Fail(c, "contact", err)
		}
		receipt, err := svc.Submit(c.Request().Context(), contactService.Submission{
			Name:    api.StringField(body, "name"),
			Email:   api.StringField(body, "email"),
			Message: api.StringField(body, "message"),
		})
		if err != nil {
			return api.Fail(c, "contact", err)
		}
		msg := "Message sent successfully"
		if !receipt.EmailSent {
			msg = "Message received"
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":    true,
			"message":    msg,
			"email_sent": receipt.EmailSent,
		})
	})
}
