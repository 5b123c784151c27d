package contact

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotbray.GO/api/apitest"
	contactService "hotbray.GO/service/contact"
)

type stubMailer struct{ err error }

func (s stubMailer) Send(context.Context, contactService.Email) error { return s.err }

func TestContactSend(t *testing.T) {
	deps := apitest.NewDeps(t)
	deps.Mailer = stubMailer{}
	deps.Inbox = "shop@example.com"
	e := apitest.Serve(deps, RegisterContactRoutes)

	rec := apitest.Do(e, http.MethodPost, "/contact/send", map[string]interface{}{
		"name": "Ann", "email": "ann@example.com", "message": "Do you ship to Leeds?",
	})
	apitest.Expect(t, rec, http.StatusOK)
	body := apitest.JSON(t, rec)
	if body["success"] != true || body["email_sent"] != true || body["message"] != "Message sent successfully" {
		t.Errorf("body = %v", body)
	}
}

func TestContactSend_MailFailureStillSucceeds(t *testing.T) {
	deps := apitest.NewDeps(t)
	deps.Mailer = stubMailer{err: errors.New("smtp down")}
	deps.Inbox = "shop@example.com"
	e := apitest.Serve(deps, RegisterContactRoutes)

	rec := apitest.Do(e, http.MethodPost, "/contact/send", map[string]interface{}{
		"name": "Bo", "email": "bo@example.com", "message": "hello",
	})
	apitest.Expect(t, rec, http.StatusOK)
	if body := apitest.JSON(t, rec); body["email_sent"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestContactSend_MissingField(t *testing.T) {
	e := apitest.Serve(apitest.NewDeps(t), RegisterContactRoutes)
	rec := apitest.Do(e, http.MethodPost, "/contact/send", map[string]interface{}{"name": "Cy", "email": "cy@example.com"})
	apitest.Expect(t, rec, http.StatusBadRequest)
	if msg := apitest.JSON(t, rec)["error"]; msg != "All fields are required" {
		t.Errorf("error = %v", msg)
	}
}
