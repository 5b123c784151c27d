package contact

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log"
	"strings"

	"hotbray.GO/core/apperror"
	contactEntity "hotbray.GO/model/entity/contact"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Store interface {
	Create(ctx context.Context, m *contactEntity.Message) error
}

type Options struct {
	// Inbox receives the notification; empty disables it.
	Inbox     string
	Brand     string
	Signature string
}

type Service struct {
	store  Store
	mailer Mailer
	opts   Options
}

// NewService wires persistence and notification. mailer may be nil.
func NewService(store Store, mailer Mailer, opts Options) *Service {
	if opts.Brand == "" {
		opts.Brand = "DGSTECH"
	}
	if opts.Signature == "" {
		opts.Signature = opts.Brand + " Support Team"
	}
	return &Service{store: store, mailer: mailer, opts: opts}
}

type Submission struct {
	Name    string
	Email   string
	Message string
}

// Receipt reports the stored message and whether both emails went out.
type Receipt struct {
	Message   *contactEntity.Message
	EmailSent bool
}

// Submit stores the message, then notifies the inbox and auto-replies to
// the sender. Notification failures are logged and never undo the write.
func (s *Service) Submit(ctx context.Context, in Submission) (*Receipt, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || strings.TrimSpace(in.Message) == "" {
		return nil, apperror.Validation("All fields are required")
	}

	msg := &contactEntity.Message{Name: in.Name, Email: in.Email, Message: in.Message}
	if err := s.store.Create(ctx, msg); err != nil {
		return nil, apperror.Dependency("save contact message", err)
	}

	if err := s.notify(ctx, in); err != nil {
		log.Printf("contact notify error (message %d): %v", msg.ID, err)
		return &Receipt{Message: msg}, nil
	}
	return &Receipt{Message: msg, EmailSent: true}, nil
}

func (s *Service) notify(ctx context.Context, in Submission) error {
	if s.mailer == nil || s.opts.Inbox == "" {
		return errMailDisabled
	}
	notice, err := render("notify.html", in)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, Email{
		To:      s.opts.Inbox,
		ReplyTo: in.Email,
		Subject: "New Contact Query from " + in.Name,
		HTML:    notice,
	}); err != nil {
		return err
	}

	reply, err := render("autoreply.html", map[string]string{
		"Name":      in.Name,
		"Brand":     s.opts.Brand,
		"Signature": s.opts.Signature,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, Email{
		To:      in.Email,
		Subject: "Thank you for contacting " + s.opts.Brand,
		HTML:    reply,
	})
}

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type mailDisabledError struct{}

func (mailDisabledError) Error() string { return "mail: notifications disabled" }

var errMailDisabled error = mailDisabledError{}
