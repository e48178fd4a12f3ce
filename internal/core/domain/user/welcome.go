package user

import "context"

type WelcomeEmailSender interface {
	SendWelcomeEmail(ctx context.Context, user User) error
}
