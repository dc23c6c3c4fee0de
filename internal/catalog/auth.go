package catalog

import (
	"context"
	"fmt"
)

// RegisterInput creates a new account. Verification happens afterwards
// through the OTP flow.
type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates an account and triggers the first OTP email.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	if err := c.api.Post(ctx, "/register", in, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login starts an email login. The server mails an OTP code and hands out
// a pre-verification session cookie that VerifyCode upgrades.
func (c *Client) Login(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.api.Post(ctx, "/login", body, nil); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

// VerifyCode submits the OTP code and completes the login.
func (c *Client) VerifyCode(ctx context.Context, code string) error {
	body := map[string]string{"code": code}
	if err := c.api.Post(ctx, "/verify-code", body, nil); err != nil {
		return fmt.Errorf("verify code: %w", err)
	}
	return nil
}

// ResendCode requests a fresh OTP code for the pending login.
func (c *Client) ResendCode(ctx context.Context) error {
	if err := c.api.Post(ctx, "/resend-code", nil, nil); err != nil {
		return fmt.Errorf("resend code: %w", err)
	}
	return nil
}

// CheckCode reports whether the pending login still has a valid,
// unexpired code waiting for verification.
func (c *Client) CheckCode(ctx context.Context) error {
	if err := c.api.Get(ctx, "/check-code", nil, nil); err != nil {
		return fmt.Errorf("check code: %w", err)
	}
	return nil
}
